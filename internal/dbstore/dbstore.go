// Package dbstore holds the SQL-backed roster and match history stores.
package dbstore

import (
	"sync"

	"github.com/lawyerconnect/lawmatch/internal/contract"
)

// StoreManagerImpl manages the roster and history store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	roster       contract.RosterStore
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetRosterStore returns the roster store.
func (mgr *StoreManagerImpl) GetRosterStore() contract.RosterStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.roster
}

// GetHistoryStore returns the history store.
func (mgr *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
