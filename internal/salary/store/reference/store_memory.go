// Package reference serves the lookup lists (job titles and cities) that
// feed the submission form's select options.
package reference

import (
	"context"
	"sync"
)

// InMemoryStore holds the lookup lists in memory for tests and dev mode.
type InMemoryStore struct {
	mu     sync.RWMutex
	titles []string
	cities []string
}

// NewMemory constructs a reference store pre-seeded with the given lists.
func NewMemory(titles, cities []string) *InMemoryStore {
	return &InMemoryStore{
		titles: append([]string(nil), titles...),
		cities: append([]string(nil), cities...),
	}
}

func (s *InMemoryStore) ListTitles(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.titles...), nil
}

func (s *InMemoryStore) ListCities(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cities...), nil
}
