// Package parquet provides data structures and functions for exporting match
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/parquet-go/parquet-go"
)

// MatchRun represents a single match run with metadata.
// This struct maps to the lawmatch_match_runs database table.
type MatchRun struct {
	// MatchID is the unique identifier for this match run
	MatchID int64 `parquet:"match_id,snappy"`

	// RequestID is the caller-visible identifier for this run
	RequestID string `parquet:"request_id,snappy"`

	// StartTime is when the match run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the match run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the match run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalCandidates is the number of eligible lawyers scored in this run
	TotalCandidates int32 `parquet:"total_candidates,snappy"`

	// TotalMatches is the number of ranked results returned
	TotalMatches int32 `parquet:"total_matches,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// CandidateScore represents the factor scores for one ranked candidate.
// This struct maps to the lawmatch_candidate_scores database table.
type CandidateScore struct {
	// MatchID references the parent match run
	MatchID int64 `parquet:"match_id,snappy"`

	// LawyerID identifies the scored lawyer
	LawyerID int64 `parquet:"lawyer_id,snappy"`

	// LawyerName is the display name of the scored lawyer
	LawyerName string `parquet:"lawyer_name,snappy"`

	// Rank is the 1-based position in the ranked results
	Rank int32 `parquet:"rank_position,snappy"`

	// Segment is the client segment that selected the weight profile
	Segment string `parquet:"segment,snappy"`

	// Engine is the matching engine that produced the score
	Engine string `parquet:"engine,snappy"`

	// CaseTypeScore is the category fit factor score
	CaseTypeScore float64 `parquet:"score_case_type,snappy"`

	// SpecializationScore is the rating-derived expertise factor score
	SpecializationScore float64 `parquet:"score_specialization,snappy"`

	// SuccessRateScore is the case success rate factor score
	SuccessRateScore float64 `parquet:"score_success_rate,snappy"`

	// AvailabilityScore is the capacity-derived availability factor score
	AvailabilityScore float64 `parquet:"score_availability,snappy"`

	// PricingScore is the budget compatibility factor score
	PricingScore float64 `parquet:"score_pricing,snappy"`

	// ClientProfileScore is the urgency fit factor score
	ClientProfileScore float64 `parquet:"score_client_profile,snappy"`

	// CombinedScore is the weighted combination of all factor scores
	CombinedScore float64 `parquet:"score_combined,snappy"`

	// Reasons holds the joined human-readable match reasons
	Reasons string `parquet:"reasons,snappy"`
}

// WriteMatchRunsParquet writes a slice of MatchRun structs to a Parquet file.
func WriteMatchRunsParquet(data []MatchRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the MatchRun struct tags
	writer := parquet.NewGenericWriter[MatchRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCandidateScoresParquet writes a slice of CandidateScore structs to a Parquet file.
func WriteCandidateScoresParquet(data []CandidateScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the CandidateScore struct tags
	writer := parquet.NewGenericWriter[CandidateScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertMatchRunRecords converts schema.MatchRunRecord to MatchRun for Parquet export.
func ConvertMatchRunRecords(records []schema.MatchRunRecord) []MatchRun {
	result := make([]MatchRun, len(records))
	for i, record := range records {
		result[i] = MatchRun{
			MatchID:         record.MatchID,
			RequestID:       record.RequestID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			RunDurationMs:   record.RunDurationMs,
			TotalCandidates: record.TotalCandidates,
			TotalMatches:    record.TotalMatches,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertCandidateScoreRecords converts schema.CandidateScoreRecord to CandidateScore for Parquet export.
func ConvertCandidateScoreRecords(records []schema.CandidateScoreRecord) []CandidateScore {
	result := make([]CandidateScore, len(records))
	for i, record := range records {
		result[i] = CandidateScore{
			MatchID:             record.MatchID,
			LawyerID:            record.LawyerID,
			LawyerName:          record.LawyerName,
			Rank:                record.Rank,
			Segment:             record.Segment,
			Engine:              record.Engine,
			CaseTypeScore:       record.CaseTypeScore,
			SpecializationScore: record.SpecializationScore,
			SuccessRateScore:    record.SuccessRateScore,
			AvailabilityScore:   record.AvailabilityScore,
			PricingScore:        record.PricingScore,
			ClientProfileScore:  record.ClientProfileScore,
			CombinedScore:       record.CombinedScore,
			Reasons:             record.Reasons,
		}
	}
	return result
}

// MockFetchMatchRuns generates sample MatchRun data for demonstration.
func MockFetchMatchRuns() []MatchRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(120 * time.Millisecond)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"category":"fraud","budget_min":1000,"budget_max":5000,"engine":"dynamic"}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(85 * time.Millisecond)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"category":"employment","urgency":"urgent","engine":"legacy"}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []MatchRun{
		{
			MatchID:         1,
			RequestID:       "1d3c7c44-60f2-4a2f-9f36-0a6c91e61f8a",
			StartTime:       startTime1,
			EndTime:         &endTime1,
			RunDurationMs:   &durationMs1,
			TotalCandidates: 150,
			TotalMatches:    10,
			ConfigParams:    &configParams1,
		},
		{
			MatchID:         2,
			RequestID:       "6f0a2b17-8757-4f0b-9f94-5a8f0a1b2c3d",
			StartTime:       startTime2,
			EndTime:         &endTime2,
			RunDurationMs:   &durationMs2,
			TotalCandidates: 75,
			TotalMatches:    5,
			ConfigParams:    &configParams2,
		},
		{
			MatchID:         3,
			RequestID:       "9b8f3e52-1c2d-4e5f-8a7b-6c5d4e3f2a1b",
			StartTime:       startTime3,
			EndTime:         nil, // Still running - nullable field
			RunDurationMs:   nil, // Not yet calculated - nullable field
			TotalCandidates: 0,
			TotalMatches:    0,
			ConfigParams:    nil, // No config stored - nullable field
		},
	}
}

// MockFetchCandidateScores generates sample CandidateScore data for demonstration.
func MockFetchCandidateScores() []CandidateScore {
	return []CandidateScore{
		{
			MatchID:             1,
			LawyerID:            7,
			LawyerName:          "Dana Reyes",
			Rank:                1,
			Segment:             "default",
			Engine:              "dynamic",
			CaseTypeScore:       100,
			SpecializationScore: 92,
			SuccessRateScore:    88,
			AvailabilityScore:   80,
			PricingScore:        74.5,
			ClientProfileScore:  50,
			CombinedScore:       86.33,
			Reasons:             "Expertise match; High success rate; Available now; Budget compatible",
		},
		{
			MatchID:             1,
			LawyerID:            12,
			LawyerName:          "Sam Okafor",
			Rank:                2,
			Segment:             "default",
			Engine:              "dynamic",
			CaseTypeScore:       70,
			SpecializationScore: 54.6,
			SuccessRateScore:    60,
			AvailabilityScore:   60,
			PricingScore:        50,
			ClientProfileScore:  50,
			CombinedScore:       59.88,
			Reasons:             "Expertise match",
		},
		{
			MatchID:             2,
			LawyerID:            3,
			LawyerName:          "Priya Nair",
			Rank:                1,
			Segment:             "urgent",
			Engine:              "legacy",
			CaseTypeScore:       100,
			SpecializationScore: 96,
			SuccessRateScore:    91,
			AvailabilityScore:   100,
			PricingScore:        62.5,
			ClientProfileScore:  80,
			CombinedScore:       91.03,
			Reasons:             "Expertise match; High success rate; Available now",
		},
	}
}
