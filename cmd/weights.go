package cmd

import (
	"github.com/lawyerconnect/lawmatch/core"
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/spf13/cobra"
)

// weightsCmd shows the weight profile per client segment.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the factor weights used for each client segment.",
	Long: `Display the weight profile applied to each client segment.

A match score is the weighted sum of six factor scores. The segment inferred
from the issue (budget, urgency) selects which profile applies. Custom weights
from the config file are merged before display, so this shows exactly what a
match run would use.

Examples:
  # Show all weight profiles
  lawmatch weights

  # Export profiles as JSON
  lawmatch weights --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show weights", err)
		}
	},
}
