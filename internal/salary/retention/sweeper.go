// Package retention purges staging rows that were never confirmed. The
// submission form promises contributors their data is gone within the
// retention window even if they never click the link.
package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"salaire/internal/salary/metrics"
)

// PendingPurger is the slice of the staging store the sweeper needs.
type PendingPurger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Sweeper deletes staging rows older than the retention window on a cron
// schedule.
type Sweeper struct {
	pending   PendingPurger
	retention time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
	cron      *cron.Cron
}

func NewSweeper(pending PendingPurger, retention time.Duration, logger *slog.Logger, m *metrics.Metrics) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		pending:   pending,
		retention: retention,
		logger:    logger,
		metrics:   m,
	}
}

// Start schedules the sweep every hour. Call Stop for a clean shutdown.
func (s *Sweeper) Start() error {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		s.SweepOnce(context.Background())
	}); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("retention sweeper started", "retention", s.retention)
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// SweepOnce runs a single purge pass. Failures are logged only; the next
// tick retries.
func (s *Sweeper) SweepOnce(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	n, err := s.pending.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("retention sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("retention sweep purged stale submissions", "count", n, "cutoff", cutoff)
		if s.metrics != nil {
			s.metrics.PendingPurged.Add(float64(n))
		}
	}
}
