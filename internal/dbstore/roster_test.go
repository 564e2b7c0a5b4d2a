package dbstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSQLiteRoster creates the roster tables and inserts two profiles, one
// with a lawyer-flagged account and one orphaned.
func seedSQLiteRoster(t *testing.T, dbPath string) {
	t.Helper()

	store, err := NewSQLRosterStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`INSERT INTO users (id, name, email, is_lawyer) VALUES (1, 'Dana Reyes', 'dana@example.com', 1)`)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO lawyer_profiles
			(id, user_id, name, categories, rating, success_rate, hourly_rate,
			 fixed_rate_min, fixed_rate_max, accepts_contingency, is_available,
			 current_cases, max_cases)
		VALUES
			(1, 1, 'Dana Reyes', 'fraud, Tax', 4.6, 0.82, 250, 1500, 6000, 1, 1, 2, 10),
			(2, NULL, 'Sam Okafor', 'employment', 3.9, 0.6, 150, 0, 0, 0, 1, 1, 5)
	`)
	require.NoError(t, err)
}

// TestSQLRosterStoreLoadLawyers tests loading profiles with and without
// linked accounts from a SQLite roster.
func TestSQLRosterStoreLoadLawyers(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "roster.db")
	seedSQLiteRoster(t, dbPath)

	store, err := NewSQLRosterStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	lawyers, err := store.LoadLawyers(context.Background())
	require.NoError(t, err)
	require.Len(t, lawyers, 2)

	dana := lawyers[0]
	assert.Equal(t, int64(1), dana.ID)
	assert.Equal(t, "Dana Reyes", dana.Name)
	assert.Equal(t, []string{"fraud", "tax"}, dana.Categories)
	assert.Equal(t, 4.6, dana.Rating)
	assert.Equal(t, 0.82, dana.SuccessRate)
	assert.Equal(t, 250.0, dana.HourlyRate)
	assert.True(t, dana.AcceptsContingency)
	assert.True(t, dana.IsAvailable)
	assert.Equal(t, 2, dana.CurrentCases)
	assert.Equal(t, 10, dana.MaxCases)
	require.NotNil(t, dana.Account)
	assert.Equal(t, "dana@example.com", dana.Account.Email)
	assert.True(t, dana.Account.IsLawyer)
	assert.True(t, dana.Eligible())

	sam := lawyers[1]
	assert.Equal(t, int64(2), sam.ID)
	assert.Nil(t, sam.Account)
	assert.False(t, sam.Eligible())
}

// TestSQLRosterStoreStatus tests the eligible vs total counts.
func TestSQLRosterStoreStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "roster.db")
	seedSQLiteRoster(t, dbPath)

	store, err := NewSQLRosterStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(2), status.TotalLawyers)
	assert.Equal(t, int64(1), status.TotalEligible)
}

// TestSQLRosterStoreNoneBackend tests the disabled roster store.
func TestSQLRosterStoreNoneBackend(t *testing.T) {
	store, err := NewSQLRosterStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	lawyers, err := store.LoadLawyers(context.Background())
	require.NoError(t, err)
	assert.Nil(t, lawyers)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Zero(t, status.TotalLawyers)
}

// TestNewSQLRosterStoreUnsupportedBackend tests backend validation.
func TestNewSQLRosterStoreUnsupportedBackend(t *testing.T) {
	_, err := NewSQLRosterStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
