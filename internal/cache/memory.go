package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// memoryStore is the in-process fallback used when no redis address is
// configured (and in tests). Entries expire lazily on read.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory builds an in-process TTL store.
func NewMemory() Store {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// newMemoryAt is the test hook for controlling the clock.
func newMemoryAt(now func() time.Time) *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (s *memoryStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(entry.raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[key] = memoryEntry{raw: raw, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}
