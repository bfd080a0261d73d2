package query

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"salaire/internal/salary/models"
)

// Dataset is the read surface of the public store the engine evaluates
// against. Both calls must share identical predicates for a given Filter.
type Dataset interface {
	GetPage(ctx context.Context, f Filter) ([]models.SalaryEntry, error)
	Count(ctx context.Context, f Filter) (int, error)
}

// Engine serves the public table: one page of rows plus the total matching
// count per filter snapshot.
type Engine struct {
	dataset Dataset
	logger  *slog.Logger
}

func NewEngine(dataset Dataset, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{dataset: dataset, logger: logger}
}

// Result is one evaluated page.
type Result struct {
	Rows       []models.SalaryEntry
	TotalCount int
	// HasNext compares against the total count rather than inferring from a
	// full page, so an exactly-full last page does not offer an empty fetch.
	HasNext bool
	// RowsErr / CountErr report per-side failures. A failed row fetch
	// yields an empty page; a failed count leaves TotalCount at zero.
	// Neither blocks the other side.
	RowsErr  error
	CountErr error
}

// Query issues the page and count evaluations in parallel and joins them.
// The two sides fail independently; Query itself never returns an error.
func (e *Engine) Query(ctx context.Context, f Filter) Result {
	f = f.Normalize()

	var (
		rows  []models.SalaryEntry
		total int
	)
	var res Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = e.dataset.GetPage(gctx, f)
		if err != nil {
			e.logger.Error("salary page fetch failed", "error", err)
			res.RowsErr = err
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = e.dataset.Count(gctx, f)
		if err != nil {
			e.logger.Error("salary count fetch failed", "error", err)
			res.CountErr = err
		}
		return nil
	})
	_ = g.Wait()

	if rows == nil {
		rows = []models.SalaryEntry{}
	}
	res.Rows = rows
	res.TotalCount = total
	res.HasNext = res.CountErr == nil && (f.Page+1)*PageSize < total
	return res
}
