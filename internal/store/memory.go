package store

import (
	"context"
	"sync"
)

// MemoryStore keeps encoded documents in process memory. Values still go
// through JSON so callers see the same fidelity as with the real drivers.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string, dst any) (bool, error) {
	s.mu.RLock()
	payload, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, decode(key, payload, dst)
}

func (s *MemoryStore) Save(_ context.Context, key string, value any) error {
	payload, err := encode(key, value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[key] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
