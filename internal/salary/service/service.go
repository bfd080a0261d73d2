// Package service orchestrates the salary contribution flows: submission
// intake behind the professional-domain gate, and the confirmation run that
// moves verified contributions from staging to the public dataset.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"salaire/internal/identity"
	"salaire/internal/salary/metrics"
	"salaire/internal/salary/models"
)

// PendingStore is the staging repository accessor. Implementations must not
// cache: the duplicate check and the confirmation flow both depend on
// observing freshly committed state.
type PendingStore interface {
	Insert(ctx context.Context, sub *models.PendingSubmission) error
	FindPending(ctx context.Context, email, company, title string) ([]*models.PendingSubmission, error)
	ListByEmail(ctx context.Context, email string) ([]*models.PendingSubmission, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// PublishedStore is the public dataset plus the verified-email ledger.
type PublishedStore interface {
	InsertEntries(ctx context.Context, entries []models.SalaryEntry) error
	HasPublished(ctx context.Context, email string) (bool, error)
	// MarkPublished is a conditional insert: it must fail with
	// sentinel.ErrAlreadyPublished when the email is already recorded.
	MarkPublished(ctx context.Context, email string, now time.Time) error
	// UnmarkPublished compensates a mark whose row insert then failed, so
	// the confirmation link stays safely reusable.
	UnmarkPublished(ctx context.Context, email string) error
}

// Service wires the stores and the identity bridge together.
type Service struct {
	pending   PendingStore
	published PublishedStore
	verifier  identity.Verifier
	returnURL string
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock fixes the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(pending PendingStore, published PublishedStore, verifier identity.Verifier, returnURL string, opts ...Option) (*Service, error) {
	if pending == nil {
		return nil, errors.New("pending store is required")
	}
	if published == nil {
		return nil, errors.New("published store is required")
	}
	if verifier == nil {
		return nil, errors.New("identity verifier is required")
	}

	svc := &Service{
		pending:   pending,
		published: published,
		verifier:  verifier,
		returnURL: returnURL,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}
