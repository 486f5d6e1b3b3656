package store

import (
	"context"
	"encoding/json"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemory returns an ephemeral Store. State lives only for the process
// lifetime; useful for tests and one-shot runs that should leave no trace.
func NewMemory() Store {
	return &memoryStore{data: make(map[string]json.RawMessage)}
}

func (s *memoryStore) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out, true
}

func (s *memoryStore) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
}

func (s *memoryStore) Remove(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
