package localstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps values in memory. Used in tests and as the fallback
// backend when no store path is configured.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	data, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// SetRaw stores a raw payload without JSON encoding. Tests use it to plant
// corrupt values.
func (s *MemoryStore) SetRaw(key string, data []byte) {
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
}
