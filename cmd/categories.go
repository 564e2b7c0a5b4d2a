package cmd

import (
	"github.com/lawyerconnect/lawmatch/core"
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/spf13/cobra"
)

// categoriesCmd lists the active category catalog.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category catalog used for matching.",
	Long: `Show every category the matcher recognizes, in catalog order.

The catalog drives category validation for 'lawmatch match' and powers the
similarity lookups used for partial matches. Override the built-in catalog
with a 'categories' list in the config file.

Examples:
  # List the catalog
  lawmatch categories

  # Include similar categories per entry
  lawmatch categories --explain

  # Export the catalog as JSON
  lawmatch categories --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCategories(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list categories", err)
		}
	},
}
