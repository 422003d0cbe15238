package store

import (
	"context"
	"sync"

	"github.com/punchamoorthee/receiptpoints/internal/models"
)

// MemoryStore is an in-process ScoreStore. It is the default driver and
// the fake used by handler tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.ScoreRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.ScoreRecord)}
}

func (m *MemoryStore) Put(_ context.Context, rec models.ScoreRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *MemoryStore) GetPoints(_ context.Context, id string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return 0, ErrNotFound
	}
	return rec.Points, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
