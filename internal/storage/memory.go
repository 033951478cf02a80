package storage

import "sync"

// MemoryStore is an in-memory Store used by tests and as a fake for
// repository consumers. GetErr and SetErr, when set, are returned by every
// call to exercise failure paths.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	GetErr error
	SetErr error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the value stored at key, or (nil, nil) if absent.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

// Set overwrites the value at key.
func (s *MemoryStore) Set(key string, value []byte) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	s.data[key] = copied
	return nil
}

// Delete removes the value at key. Unknown keys are a no-op.
func (s *MemoryStore) Delete(key string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// SetRaw stores a value without going through Set, bypassing error
// injection. Tests use it to seed malformed payloads.
func (s *MemoryStore) SetRaw(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
