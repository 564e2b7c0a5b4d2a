package dbstore

import (
	"errors"
	"fmt"

	"github.com/lawyerconnect/lawmatch/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of match history data to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("history store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no match history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total match runs: %d\n", status.TotalRuns)
	fmt.Printf("Total candidate records: %d\n", status.TableSizes[candidateScoresTable])

	// Retrieve all match runs
	matchRuns, err := store.GetAllMatchRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve match runs: %w", err)
	}

	// Retrieve all candidate scores
	candidateScores, err := store.GetAllCandidateScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve candidate scores: %w", err)
	}

	// Convert to Parquet format
	parquetMatchRuns := parquet.ConvertMatchRunRecords(matchRuns)
	parquetCandidateScores := parquet.ConvertCandidateScoreRecords(candidateScores)

	// Write match runs to Parquet
	matchRunsFile := outputFile + ".match_runs.parquet"
	if err := parquet.WriteMatchRunsParquet(parquetMatchRuns, matchRunsFile); err != nil {
		return fmt.Errorf("failed to write match runs: %w", err)
	}
	fmt.Printf("Exported %d match runs to: %s\n", len(parquetMatchRuns), matchRunsFile)

	// Write candidate scores to Parquet
	candidateScoresFile := outputFile + ".candidate_scores.parquet"
	if err := parquet.WriteCandidateScoresParquet(parquetCandidateScores, candidateScoresFile); err != nil {
		return fmt.Errorf("failed to write candidate scores: %w", err)
	}
	fmt.Printf("Exported %d candidate score records to: %s\n", len(parquetCandidateScores), candidateScoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
