package schema

import "time"

// MatchRunRecord represents a row from the lawmatch_match_runs table.
type MatchRunRecord struct {
	MatchID         int64
	RequestID       string
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	TotalCandidates int32
	TotalMatches    int32
	ConfigParams    *string
}

// CandidateScoreRecord represents a row from the lawmatch_candidate_scores table.
type CandidateScoreRecord struct {
	MatchID             int64
	LawyerID            int64
	LawyerName          string
	Rank                int32
	Segment             string
	Engine              string
	CaseTypeScore       float64
	SpecializationScore float64
	SuccessRateScore    float64
	AvailabilityScore   float64
	PricingScore        float64
	ClientProfileScore  float64
	CombinedScore       float64
	Reasons             string
}

// HistoryStatus holds status information about the match history store.
type HistoryStatus struct {
	Backend       DatabaseBackend
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TotalMatches  int64
	TableSizes    map[string]int64
}

// RosterStatus holds status information about the roster store.
type RosterStatus struct {
	Backend       DatabaseBackend
	Connected     bool
	TotalLawyers  int64
	TotalEligible int64
}
