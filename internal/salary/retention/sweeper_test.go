package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salaire/internal/salary/models"
	"salaire/internal/salary/store/pending"
)

func stagedAt(t *testing.T, store *pending.InMemoryStore, email string, createdAt time.Time) {
	t.Helper()
	err := store.Insert(context.Background(), &models.PendingSubmission{
		ID:           uuid.New(),
		Email:        email,
		Company:      "Wave",
		Title:        "Backend Engineer",
		Location:     "Abidjan",
		Level:        models.LevelSenior,
		WorkMode:     models.WorkHybrid,
		Compensation: "900 000 FCFA",
		CreatedAt:    createdAt,
	})
	require.NoError(t, err)
}

func TestSweepOnce_PurgesOnlyStaleRows(t *testing.T) {
	store := pending.NewMemory()
	stagedAt(t, store, "old@wave.com", time.Now().Add(-8*24*time.Hour))
	stagedAt(t, store, "fresh@wave.com", time.Now().Add(-time.Hour))

	sweeper := NewSweeper(store, 6*24*time.Hour, nil, nil)
	sweeper.SweepOnce(context.Background())

	stale, err := store.ListByEmail(context.Background(), "old@wave.com")
	require.NoError(t, err)
	assert.Empty(t, stale)

	fresh, err := store.ListByEmail(context.Background(), "fresh@wave.com")
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestSweepOnce_NothingToPurge(t *testing.T) {
	store := pending.NewMemory()
	stagedAt(t, store, "fresh@wave.com", time.Now())

	sweeper := NewSweeper(store, 6*24*time.Hour, nil, nil)
	sweeper.SweepOnce(context.Background())

	rows, err := store.ListByEmail(context.Background(), "fresh@wave.com")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

type failingPurger struct{}

func (failingPurger) DeleteOlderThan(context.Context, time.Time) (int, error) {
	return 0, errors.New("store down")
}

func TestSweepOnce_SurvivesStoreFailure(t *testing.T) {
	sweeper := NewSweeper(failingPurger{}, 6*24*time.Hour, nil, nil)
	assert.NotPanics(t, func() {
		sweeper.SweepOnce(context.Background())
	})
}

func TestSweeper_StartStop(t *testing.T) {
	sweeper := NewSweeper(pending.NewMemory(), 6*24*time.Hour, nil, nil)
	require.NoError(t, sweeper.Start())
	sweeper.Stop()
}
