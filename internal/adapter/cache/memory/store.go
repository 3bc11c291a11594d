// Package memory implements the cache store on a process-local map. It is
// the default backend and the substitution point for tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

type record struct {
	value     []byte
	updatedAt time.Time
}

// Store is a synchronized in-memory key/value cache.
type Store struct {
	mu   sync.RWMutex
	data map[string]record
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string]record)}
}

// Get returns the cached value, or domain.ErrNotFound on a miss. The
// returned slice is a copy; callers may hold it across writes.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(rec.value))
	copy(out, rec.value)
	return out, nil
}

// Set stores a copy of value under key, replacing any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = record{value: cp, updatedAt: time.Now()}
	return nil
}

// Purge removes entries last written before the cutoff and returns how
// many were removed.
func (s *Store) Purge(_ context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, rec := range s.data {
		if rec.updatedAt.Before(olderThan) {
			delete(s.data, key)
			removed++
		}
	}
	return removed, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op, present so every backend satisfies the same lifecycle.
func (s *Store) Close() error { return nil }
