package pagecache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	body     []byte
	deadline time.Time
}

// MemoryStore is a process-local Store used in tests and single-node setups.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	if s.now().After(entry.deadline) {
		delete(s.entries, key)
		return nil, ErrMiss
	}

	return entry.body, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	stored := make([]byte, len(body))
	copy(stored, body)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		body:     stored,
		deadline: s.now().Add(ttl),
	}

	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]memoryEntry)

	return nil
}
