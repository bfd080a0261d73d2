package published

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salaire/internal/salary/models"
	"salaire/internal/salary/query"
	"salaire/pkg/platform/sentinel"
)

// PostgresStore persists published entries in the salaires table and the
// confirmation ledger in salaires_confirmations. Page and count reads go
// through the get_salaires / count_salaires server-side procedures so both
// evaluations share identical predicates.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed public store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InsertEntries(ctx context.Context, entries []models.SalaryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert entries: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO salaires (id, entreprise, poste, localisation, niveau, modalite_travail, remuneration, exp_entreprise, exp_totale, date_ajout)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert entries: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			e.ID,
			e.Company,
			e.Title,
			e.Location,
			e.Level,
			e.WorkMode,
			e.Compensation,
			e.YearsAtCompany,
			e.YearsTotal,
			e.PublishedAt,
		); err != nil {
			return fmt.Errorf("insert salary entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert entries: %w", err)
	}
	return nil
}

func (s *PostgresStore) HasPublished(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM salaires_confirmations WHERE email = lower($1))`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check published email: %w", err)
	}
	return exists, nil
}

// MarkPublished records the verified email through a conditional insert.
// The unique constraint on the email column turns the replay race into a
// storage-level conflict: rows-affected zero means another confirmation for
// this email already went through.
func (s *PostgresStore) MarkPublished(ctx context.Context, email string, now time.Time) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO salaires_confirmations (email, published_at)
		VALUES (lower($1), $2)
		ON CONFLICT (email) DO NOTHING
	`, email, now)
	if err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark published rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mark published %s: %w", email, sentinel.ErrAlreadyPublished)
	}
	return nil
}

// UnmarkPublished releases a ledger mark after a failed row insert so the
// confirmation link stays reusable.
func (s *PostgresStore) UnmarkPublished(ctx context.Context, email string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM salaires_confirmations WHERE email = lower($1)`, email)
	if err != nil {
		return fmt.Errorf("unmark published: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetPage(ctx context.Context, f query.Filter) ([]models.SalaryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entreprise, poste, localisation, niveau, modalite_travail, remuneration, exp_entreprise, exp_totale, date_ajout
		FROM get_salaires($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		nullString(f.Location),
		nullString(f.Level),
		nullInt(f.MinExperience),
		nullString(f.Search),
		f.SortColumn,
		sortDirection(f.SortDesc),
		f.Page,
		query.PageSize,
	)
	if err != nil {
		return nil, fmt.Errorf("get salaires page: %w", err)
	}
	defer rows.Close()

	out := []models.SalaryEntry{}
	for rows.Next() {
		var e models.SalaryEntry
		if err := rows.Scan(
			&e.ID,
			&e.Company,
			&e.Title,
			&e.Location,
			&e.Level,
			&e.WorkMode,
			&e.Compensation,
			&e.YearsAtCompany,
			&e.YearsTotal,
			&e.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan salary entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salary entries: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context, f query.Filter) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT count_salaires($1, $2, $3, $4)`,
		nullString(f.Location),
		nullString(f.Level),
		nullInt(f.MinExperience),
		nullString(f.Search),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count salaires: %w", err)
	}
	return total, nil
}

func sortDirection(desc bool) string {
	if desc {
		return "desc"
	}
	return "asc"
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
