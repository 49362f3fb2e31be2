package storage

import (
	"sync"

	"selfParlayBot/models"
)

// MemoryStore keeps the snapshot in memory, deep-copied on both sides so the
// engine's state never aliases the stored one. Tests use it directly; SaveErr
// makes saves fail to exercise the rollback path.
type MemoryStore struct {
	mu      sync.Mutex
	snap    *models.Snapshot
	saves   int
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return models.NewSnapshot(), nil
	}
	return m.snap.Clone(), nil
}

func (m *MemoryStore) Save(snap *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.snap = snap.Clone()
	m.saves++
	return nil
}

// Saves reports how many saves have been committed.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Snapshot returns a copy of the last committed state.
func (m *MemoryStore) Snapshot() *models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return models.NewSnapshot()
	}
	return m.snap.Clone()
}
