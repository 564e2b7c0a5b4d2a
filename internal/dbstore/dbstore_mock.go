package dbstore

import (
	"context"
	"time"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRosterStore implements the StoreManager interface.
func (m *MockStoreManager) GetRosterStore() contract.RosterStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RosterStore)
	return store
}

// GetHistoryStore implements the StoreManager interface.
func (m *MockStoreManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockRosterStore is a mock implementation of RosterStore for testing.
type MockRosterStore struct {
	mock.Mock
}

var _ contract.RosterStore = &MockRosterStore{} // Compile-time check

// LoadLawyers implements the RosterStore interface.
func (m *MockRosterStore) LoadLawyers(ctx context.Context) ([]*schema.Lawyer, error) {
	args := m.Called(ctx)
	lawyers, _ := args.Get(0).([]*schema.Lawyer)
	return lawyers, args.Error(1)
}

// GetStatus implements the RosterStore interface.
func (m *MockRosterStore) GetStatus() (schema.RosterStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RosterStatus), args.Error(1)
}

// Close implements the RosterStore interface.
func (m *MockRosterStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginMatch implements the HistoryStore interface.
func (m *MockHistoryStore) BeginMatch(startTime time.Time, requestID string, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, requestID, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndMatch implements the HistoryStore interface.
func (m *MockHistoryStore) EndMatch(matchID int64, endTime time.Time, totalCandidates, totalMatches int) error {
	args := m.Called(matchID, endTime, totalCandidates, totalMatches)
	return args.Error(0)
}

// RecordCandidate implements the HistoryStore interface.
func (m *MockHistoryStore) RecordCandidate(matchID int64, rank int, result schema.MatchResult) error {
	args := m.Called(matchID, rank, result)
	return args.Error(0)
}

// GetAllMatchRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllMatchRuns() ([]schema.MatchRunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.MatchRunRecord)
	return records, args.Error(1)
}

// GetAllCandidateScores implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllCandidateScores() ([]schema.CandidateScoreRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.CandidateScoreRecord)
	return records, args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
