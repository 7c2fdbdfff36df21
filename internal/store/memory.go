package store

import "sync"

// MemoryStorage is a concurrency-safe in-memory slot backend, used in tests
// and anywhere durability across restarts is not needed.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStorage) Read(slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[slot]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *MemoryStorage) Write(slot string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make([]byte, len(data))
	copy(doc, data)
	s.data[slot] = doc
	return nil
}
