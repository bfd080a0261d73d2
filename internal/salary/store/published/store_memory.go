// Package published stores the public, anonymized salary dataset together
// with the verified-email confirmation ledger that enforces one publish per
// identity.
package published

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"salaire/internal/salary/models"
	"salaire/internal/salary/query"
	"salaire/pkg/platform/sentinel"
)

// InMemoryStore keeps published entries and the confirmation ledger in
// memory for tests and dev mode.
type InMemoryStore struct {
	mu        sync.RWMutex
	entries   []models.SalaryEntry
	confirmed map[string]time.Time
}

// NewMemory constructs an empty in-memory public store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{confirmed: make(map[string]time.Time)}
}

func (s *InMemoryStore) InsertEntries(_ context.Context, entries []models.SalaryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

// HasPublished reports whether the verified email has already been through a
// successful publish. Reads the ledger, never the public rows, which carry
// no email.
func (s *InMemoryStore) HasPublished(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.confirmed[strings.ToLower(email)]
	return ok, nil
}

// MarkPublished records the verified email in the ledger. Returns
// sentinel.ErrAlreadyPublished when the email is already recorded, making
// check-then-mark safe to collapse into a single conditional write.
func (s *InMemoryStore) MarkPublished(_ context.Context, email string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(email)
	if _, ok := s.confirmed[key]; ok {
		return fmt.Errorf("mark published %s: %w", key, sentinel.ErrAlreadyPublished)
	}
	s.confirmed[key] = now
	return nil
}

// UnmarkPublished releases a ledger mark after a failed row insert.
func (s *InMemoryStore) UnmarkPublished(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.confirmed, strings.ToLower(email))
	return nil
}

// GetPage returns one page of entries matching the filter under the
// requested sort.
func (s *InMemoryStore) GetPage(_ context.Context, f query.Filter) ([]models.SalaryEntry, error) {
	s.mu.RLock()
	matched := s.match(f)
	s.mu.RUnlock()

	sortEntries(matched, f.SortColumn, f.SortDesc)

	start := f.Page * query.PageSize
	if start >= len(matched) {
		return []models.SalaryEntry{}, nil
	}
	end := start + query.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

// Count returns the total number of entries matching the filter, ignoring
// pagination.
func (s *InMemoryStore) Count(_ context.Context, f query.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.match(f)), nil
}

func (s *InMemoryStore) match(f query.Filter) []models.SalaryEntry {
	out := make([]models.SalaryEntry, 0, len(s.entries))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, e := range s.entries {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Company), search) &&
			!strings.Contains(strings.ToLower(e.Title), search) {
			continue
		}
		if f.Location != "" && e.Location != f.Location {
			continue
		}
		if f.Level != "" && e.Level != f.Level {
			continue
		}
		if f.MinExperience != nil && e.YearsTotal < *f.MinExperience {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sortEntries(entries []models.SalaryEntry, column string, desc bool) {
	less := func(a, b models.SalaryEntry) bool {
		switch column {
		case query.SortCompany:
			return a.Company < b.Company
		case query.SortTitle:
			return a.Title < b.Title
		case query.SortLocation:
			return a.Location < b.Location
		case query.SortCompensation:
			return a.Compensation < b.Compensation
		case query.SortYearsAtCompany:
			return a.YearsAtCompany < b.YearsAtCompany
		case query.SortYearsTotal:
			return a.YearsTotal < b.YearsTotal
		case query.SortLevel:
			return a.Level < b.Level
		default:
			return a.PublishedAt.Before(b.PublishedAt)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}
