package dbstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"
)

// JSONRosterStore implements the RosterStore interface over a JSON file.
// Useful for demos and for running against exported roster snapshots
// without a database.
type JSONRosterStore struct {
	path string
}

var _ contract.RosterStore = &JSONRosterStore{} // Compile-time check

// NewJSONRosterStore creates a roster store reading from the given file.
// The file must exist; its contents are parsed lazily on each load.
func NewJSONRosterStore(path string) (contract.RosterStore, error) {
	if path == "" {
		return nil, fmt.Errorf("roster file path cannot be empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("roster file %q not accessible: %w", path, err)
	}
	return &JSONRosterStore{path: path}, nil
}

// LoadLawyers reads and parses the roster file. The file holds either a
// bare array of lawyers or an object with a "lawyers" key.
func (rs *JSONRosterStore) LoadLawyers(_ context.Context) ([]*schema.Lawyer, error) {
	data, err := os.ReadFile(rs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %q: %w", rs.path, err)
	}

	var lawyers []*schema.Lawyer
	if err := json.Unmarshal(data, &lawyers); err == nil {
		return lawyers, nil
	}

	var wrapped struct {
		Lawyers []*schema.Lawyer `json:"lawyers"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %q: %w", rs.path, err)
	}
	return wrapped.Lawyers, nil
}

// GetStatus returns status information about the roster file.
func (rs *JSONRosterStore) GetStatus() (schema.RosterStatus, error) {
	status := schema.RosterStatus{
		Backend:   schema.NoneBackend,
		Connected: true,
	}

	lawyers, err := rs.LoadLawyers(context.Background())
	if err != nil {
		return status, err
	}

	status.TotalLawyers = int64(len(lawyers))
	for _, lawyer := range lawyers {
		if lawyer.Eligible() {
			status.TotalEligible++
		}
	}
	return status, nil
}

// Close is a no-op for file-based rosters.
func (rs *JSONRosterStore) Close() error {
	return nil
}
