// Package pending stores unverified salary submissions. Every operation is a
// live round-trip against the backing store: the duplicate check and the
// confirmation flow must observe freshly committed state, so there is no
// local caching layer.
package pending

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"salaire/internal/salary/models"
)

// InMemoryStore keeps staging rows in memory for tests and dev mode.
type InMemoryStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*models.PendingSubmission
}

// NewMemory constructs an empty in-memory staging store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{rows: make(map[uuid.UUID]*models.PendingSubmission)}
}

func (s *InMemoryStore) Insert(_ context.Context, sub *models.PendingSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sub
	s.rows[sub.ID] = &cp
	return nil
}

// FindPending returns the staging rows exactly matching (email, company,
// title). An empty result means no conflict.
func (s *InMemoryStore) FindPending(_ context.Context, email, company, title string) ([]*models.PendingSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.PendingSubmission
	for _, row := range s.rows {
		if strings.EqualFold(row.Email, email) && row.Company == company && row.Title == title {
			cp := *row
			out = append(out, &cp)
		}
	}
	sortByCreation(out)
	return out, nil
}

func (s *InMemoryStore) ListByEmail(_ context.Context, email string) ([]*models.PendingSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.PendingSubmission
	for _, row := range s.rows {
		if strings.EqualFold(row.Email, email) {
			cp := *row
			out = append(out, &cp)
		}
	}
	sortByCreation(out)
	return out, nil
}

func (s *InMemoryStore) DeleteByEmail(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, row := range s.rows {
		if strings.EqualFold(row.Email, email) {
			delete(s.rows, id)
		}
	}
	return nil
}

// DeleteOlderThan purges staging rows created before cutoff, returning how
// many were removed. The retention sweeper is the only caller.
func (s *InMemoryStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for id, row := range s.rows {
		if row.CreatedAt.Before(cutoff) {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

func sortByCreation(rows []*models.PendingSubmission) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
}
