package cmd

import (
	"github.com/lawyerconnect/lawmatch/core"
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/spf13/cobra"
)

// matchCmd performs lawyer matching for a legal issue.
var matchCmd = &cobra.Command{
	Use:   "match [category]",
	Short: "Show the top lawyers ranked by match score.",
	Long: `Score every eligible lawyer against a legal issue and rank the strongest matches.

Evaluates six factors per lawyer (case type fit, specialization, success rate,
availability, pricing fit, client profile fit) and combines them with weights
chosen for the client's segment, helping you:
- Find lawyers who handle the issue's category or a related one
- Prefer proven lawyers when quality matters most
- Surface available lawyers for urgent matters
- Respect the client's budget and preferred pricing model

Lawyers without a linked lawyer-flagged account are skipped, as are lawyers
whose combined score is zero.

Examples:
  # Match a fraud issue against the roster
  lawmatch match fraud --budget-min 1000 --budget-max 5000

  # Urgent matter with an hourly pricing preference
  lawmatch match --category employment --urgency urgent --pricing hourly

  # Include factor breakdown and match reasons
  lawmatch match fraud --detail --explain

  # Use the fixed-weight legacy engine
  lawmatch match fraud --engine legacy

  # Export findings to CSV for tracking
  lawmatch match fraud --output csv --output-file matches.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMatch(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run matching", err)
		}
	},
}
