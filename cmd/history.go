package cmd

import (
	"fmt"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/internal/dbstore"
	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString("history-db-connect", backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no roster access for history commands)
	if err := dbstore.InitStores("", schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString("history-db-connect", backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on match history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by match commands. This avoids issue validation and
// complex config processing for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage historical match tracking and exports",
	Long: `Manage historical match data used for trend tracking and reporting.

When enabled, Lawmatch tracks every match run, storing:
- Run metadata (timestamp, configuration, duration)
- Per-candidate factor scores and combined scores
- Match reasons for each ranked lawyer

This enables longitudinal analysis, ranking audits, and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show match tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  lawmatch history status

  # Export for analysis in pandas/DuckDB
  lawmatch history export --output-file match-data.parquet`,
}

// historyClearCmd clears the match history data.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical match tracking data",
	Long: `Delete all stored match runs and candidate score history.

This removes:
- All match run metadata
- Per-candidate factor scores and combined scores
- Recorded match reasons

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting trend tracking
- Database storage is full
- Starting fresh match history
- Testing history features

Examples:
  # Export before clearing
  lawmatch history export --output-file backup.parquet
  lawmatch history clear

  # Clear and start fresh
  lawmatch history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := dbstore.ClearHistory(cfg.HistoryBackend, contract.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear match history", err)
		}
		fmt.Println("Match history cleared successfully.")
	},
}

// historyStatusCmd shows match history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display match tracking statistics and connection details",
	Long: `Show detailed information about historical match tracking.

Displays:
- Backend type and connection status
- Total number of match runs stored
- Last and oldest match run timestamps
- Total matches recorded across all runs
- Database table sizes

Use this to:
- Verify match tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health
- Estimate storage requirements

Examples:
  # Check match tracking status
  lawmatch history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := dbstore.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get match history status", err)
		}
		dbstore.PrintHistoryStatus(status)
	},
}

// historyExportCmd exports match history data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored match data to Parquet format for use with analytics tools.

Exports two datasets:
- Match runs - metadata about each match execution
- Candidate scores - per-lawyer factor scores and reasons per run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Schema evolution for future data additions
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Use cases:
- Ranking quality audits across runs
- Custom dashboards and visualizations
- ML model training on match outcomes
- Executive reporting and KPIs

Examples:
  # Export all data
  lawmatch history export --output-file match-data.parquet

  # Use with DuckDB for analysis
  lawmatch history export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.match_runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := dbstore.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export match history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the match history store.

Migrations allow:
- Upgrading to new schema versions when Lawmatch is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed
- Testing new features on specific schema versions

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  lawmatch history migrate

  # Migrate to specific version
  lawmatch history migrate --target-version 2

  # Rollback to previous version
  lawmatch history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := dbstore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
