// Package cmd defines the command-line interface for lawmatch.
package cmd

import (
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("category", "c", "", "Legal issue category to match against")
	rootCmd.PersistentFlags().Float64("budget-min", 0, "Lower bound of the client budget")
	rootCmd.PersistentFlags().Float64("budget-max", 0, "Upper bound of the client budget")
	rootCmd.PersistentFlags().String("urgency", "", "Issue urgency: normal or high or urgent")
	rootCmd.PersistentFlags().String("pricing", "", "Preferred pricing model: hourly or fixed or contingency")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for score columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("engine", string(schema.DynamicEngine), "Matching engine: dynamic or legacy")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-lawyer factor score breakdown")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("max-similar", contract.DefaultMaxSimilar, "Result cap for category similarity lookups")
	rootCmd.PersistentFlags().String("roster", "", "Path to a JSON roster file (takes precedence over the roster backend)")
	rootCmd.PersistentFlags().String("roster-backend", string(schema.SQLiteBackend), "Roster backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("roster-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Match history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for match history (must differ from roster-db-connect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of matchCmd to Viper
	matchCmd.Flags().Bool("explain", false, "Print per-lawyer match reasons")
	if err := viper.BindPFlags(matchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding match flags", err)
	}

	// Bind all flags of categoriesCmd to Viper
	categoriesCmd.Flags().Bool("explain", false, "Print similar categories per catalog entry")
	if err := viper.BindPFlags(categoriesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding categories flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
