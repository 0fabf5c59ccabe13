package storage

import "sync"

// MemoryStore is an in-memory KV. Safe for concurrent access; used in tests
// and anywhere persistence across restarts is not needed.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Load returns the value stored under key.
func (s *MemoryStore) Load(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok
}

// Store overwrites the value under key.
func (s *MemoryStore) Store(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}
