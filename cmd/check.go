package cmd

import (
	"github.com/lawyerconnect/lawmatch/core"
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd verifies storage connectivity.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify roster and history storage connectivity.",
	Long: `Connect to the configured roster and history backends and print their status.

Displays:
- Roster backend type, connection status, and lawyer counts
- History backend type, run counts, and table sizes

Use this to:
- Verify connection strings before a match run
- Confirm the roster contains eligible lawyers
- Check that match history tracking is recording runs

Examples:
  # Check the default sqlite stores
  lawmatch check

  # Check a PostgreSQL roster (set connection string via env variable)
  LAWMATCH_ROSTER_BACKEND=postgresql LAWMATCH_ROSTER_DB_CONNECT="..." lawmatch check`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Storage check failed", err)
		}
	},
}
