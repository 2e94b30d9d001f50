// Package store provides the persistence layer: a small key/value Store
// capability with in-memory, file, and PostgreSQL backends, and the
// HistoryStore that keeps analysis records on top of it.
package store

import (
	"context"
	"sync"
)

// Storage keys. Values are JSON-serialized.
const (
	// KeyHistory holds the ordered list of analysis records, newest first.
	KeyHistory = "prep_history"
	// KeyLatest holds the most recently created analysis record.
	KeyLatest = "latest_analysis"
	// KeyTestStatus holds the checked internal-test item ids.
	KeyTestStatus = "prp_test_status"
	// KeySubmission holds the final submission links.
	KeySubmission = "prp_final_submission"
)

// Store is the injected persistence capability: string keys mapping to
// JSON-serialized values. Get reports found=false for keys never set.
// Implementations are expected to swallow nothing; corruption handling
// happens one layer up, where values are parsed.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// MemoryStore is a Store backed by a map. It is the substitution point for
// tests and the default for one-shot CLI runs without a data file.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get returns the stored value for key, if any.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.values[key]
	if !found {
		return nil, false, nil
	}
	// Copy so callers cannot mutate stored bytes.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}
