// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/lawyerconnect/lawmatch/schema"
)

// RosterStore defines the read side of the lawyer roster. The surrounding
// application owns lawyer data; the matcher only ever loads a snapshot.
// This allows the CLI to be tested without a real database.
type RosterStore interface {
	// LoadLawyers returns a consistent snapshot of all lawyer profiles
	// with their linked accounts.
	LoadLawyers(ctx context.Context) ([]*schema.Lawyer, error)

	// GetStatus returns status information about the roster store.
	GetStatus() (schema.RosterStatus, error)

	Close() error
}

// HistoryStore defines the interface for tracking match runs and storing
// per-candidate scores. This allows the store to be mocked for testing.
type HistoryStore interface {
	// BeginMatch creates a new match run and returns its unique ID.
	BeginMatch(startTime time.Time, requestID string, configParams map[string]any) (int64, error)

	// EndMatch updates the match run with completion data.
	EndMatch(matchID int64, endTime time.Time, totalCandidates, totalMatches int) error

	// RecordCandidate stores the factor scores for one ranked candidate.
	RecordCandidate(matchID int64, rank int, result schema.MatchResult) error

	// GetAllMatchRuns retrieves every recorded match run.
	GetAllMatchRuns() ([]schema.MatchRunRecord, error)

	// GetAllCandidateScores retrieves every recorded candidate score row.
	GetAllCandidateScores() ([]schema.CandidateScoreRecord, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	Close() error
}

// StoreManager defines the interface for accessing the configured stores.
type StoreManager interface {
	GetRosterStore() RosterStore
	GetHistoryStore() HistoryStore
}
