package query_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salaire/internal/salary/models"
	"salaire/internal/salary/query"
	"salaire/internal/salary/store/published"
)

func seedEntries(t *testing.T, store *published.InMemoryStore, n int) {
	t.Helper()
	entries := make([]models.SalaryEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, models.SalaryEntry{
			ID:           uuid.New(),
			Company:      fmt.Sprintf("Entreprise %02d", i),
			Title:        "Backend Engineer",
			Location:     "Abidjan",
			Level:        models.LevelSenior,
			WorkMode:     models.WorkHybrid,
			Compensation: fmt.Sprintf("%d FCFA", 500_000+i*10_000),
			YearsTotal:   i % 10,
			PublishedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		})
	}
	require.NoError(t, store.InsertEntries(context.Background(), entries))
}

func TestEngine_PageAndCountAgree(t *testing.T) {
	store := published.NewMemory()
	seedEntries(t, store, 45)
	engine := query.NewEngine(store, nil)

	res := engine.Query(context.Background(), query.DefaultFilter())
	require.NoError(t, res.RowsErr)
	require.NoError(t, res.CountErr)
	assert.Len(t, res.Rows, query.PageSize)
	assert.Equal(t, 45, res.TotalCount)
	assert.True(t, res.HasNext)

	res = engine.Query(context.Background(), query.DefaultFilter().WithPage(1))
	assert.Len(t, res.Rows, 15)
	assert.Equal(t, 45, res.TotalCount)
	assert.False(t, res.HasNext, "a partial last page offers no further fetch")

	res = engine.Query(context.Background(), query.DefaultFilter().WithPage(2))
	assert.Empty(t, res.Rows)
	assert.False(t, res.HasNext)
}

func TestEngine_ExactlyFullLastPage(t *testing.T) {
	store := published.NewMemory()
	seedEntries(t, store, query.PageSize*2)
	engine := query.NewEngine(store, nil)

	res := engine.Query(context.Background(), query.DefaultFilter().WithPage(1))
	assert.Len(t, res.Rows, query.PageSize)
	assert.False(t, res.HasNext, "a full final page must not promise a third")
}

func TestEngine_FilterAppliesToBothSides(t *testing.T) {
	store := published.NewMemory()
	seedEntries(t, store, 45)
	engine := query.NewEngine(store, nil)

	f := query.DefaultFilter()
	f.Search = "entreprise 0" // matches 00..09
	res := engine.Query(context.Background(), f)
	assert.Len(t, res.Rows, 10)
	assert.Equal(t, 10, res.TotalCount)
	assert.False(t, res.HasNext)
}

type splitDataset struct {
	inner    query.Dataset
	pageErr  error
	countErr error
}

func (d splitDataset) GetPage(ctx context.Context, f query.Filter) ([]models.SalaryEntry, error) {
	if d.pageErr != nil {
		return nil, d.pageErr
	}
	return d.inner.GetPage(ctx, f)
}

func (d splitDataset) Count(ctx context.Context, f query.Filter) (int, error) {
	if d.countErr != nil {
		return 0, d.countErr
	}
	return d.inner.Count(ctx, f)
}

func TestEngine_RowFailureStillCounts(t *testing.T) {
	store := published.NewMemory()
	seedEntries(t, store, 45)
	boom := errors.New("page boom")
	engine := query.NewEngine(splitDataset{inner: store, pageErr: boom}, nil)

	res := engine.Query(context.Background(), query.DefaultFilter())
	assert.ErrorIs(t, res.RowsErr, boom)
	require.NoError(t, res.CountErr)
	assert.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows, "a failed fetch presents an empty page, not nil")
	assert.Equal(t, 45, res.TotalCount, "the count side is unaffected")
	assert.True(t, res.HasNext)
}

func TestEngine_CountFailureStillShowsRows(t *testing.T) {
	store := published.NewMemory()
	seedEntries(t, store, 45)
	boom := errors.New("count boom")
	engine := query.NewEngine(splitDataset{inner: store, countErr: boom}, nil)

	res := engine.Query(context.Background(), query.DefaultFilter())
	require.NoError(t, res.RowsErr)
	assert.ErrorIs(t, res.CountErr, boom)
	assert.Len(t, res.Rows, query.PageSize, "the row side is unaffected")
	assert.Zero(t, res.TotalCount)
	assert.False(t, res.HasNext, "without a count there is no next-page promise")
}

func TestEngine_NormalizesBeforeEvaluating(t *testing.T) {
	store := published.NewMemory()
	seedEntries(t, store, 5)
	engine := query.NewEngine(store, nil)

	f := query.Filter{SortColumn: "bogus", Page: -4}
	res := engine.Query(context.Background(), f)
	require.NoError(t, res.RowsErr)
	assert.Len(t, res.Rows, 5)
	assert.Equal(t, 5, res.TotalCount)
}
