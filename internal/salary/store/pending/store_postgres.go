package pending

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salaire/internal/salary/models"
)

// PostgresStore persists staging rows in the salaires_pending table.
// This store is pure I/O; duplicate and retention rules live in the service
// and sweeper.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed staging store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const pendingColumns = `id, email, entreprise, poste, localisation, niveau, modalite_travail, remuneration, exp_entreprise, exp_totale, date_ajout`

func (s *PostgresStore) Insert(ctx context.Context, sub *models.PendingSubmission) error {
	query := `
		INSERT INTO salaires_pending (` + pendingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		sub.ID,
		sub.Email,
		sub.Company,
		sub.Title,
		sub.Location,
		sub.Level,
		sub.WorkMode,
		sub.Compensation,
		sub.YearsAtCompany,
		sub.YearsTotal,
		sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending submission: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindPending(ctx context.Context, email, company, title string) ([]*models.PendingSubmission, error) {
	query := `
		SELECT ` + pendingColumns + `
		FROM salaires_pending
		WHERE lower(email) = lower($1) AND entreprise = $2 AND poste = $3
		ORDER BY date_ajout
	`
	rows, err := s.db.QueryContext(ctx, query, email, company, title)
	if err != nil {
		return nil, fmt.Errorf("find pending submissions: %w", err)
	}
	defer rows.Close()
	return scanPendingRows(rows)
}

func (s *PostgresStore) ListByEmail(ctx context.Context, email string) ([]*models.PendingSubmission, error) {
	query := `
		SELECT ` + pendingColumns + `
		FROM salaires_pending
		WHERE lower(email) = lower($1)
		ORDER BY date_ajout
	`
	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list pending by email: %w", err)
	}
	defer rows.Close()
	return scanPendingRows(rows)
}

func (s *PostgresStore) DeleteByEmail(ctx context.Context, email string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM salaires_pending WHERE lower(email) = lower($1)`, email)
	if err != nil {
		return fmt.Errorf("delete pending by email: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM salaires_pending WHERE date_ajout < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete pending older than: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete pending rows affected: %w", err)
	}
	return int(n), nil
}

func scanPendingRows(rows *sql.Rows) ([]*models.PendingSubmission, error) {
	var out []*models.PendingSubmission
	for rows.Next() {
		var sub models.PendingSubmission
		if err := rows.Scan(
			&sub.ID,
			&sub.Email,
			&sub.Company,
			&sub.Title,
			&sub.Location,
			&sub.Level,
			&sub.WorkMode,
			&sub.Compensation,
			&sub.YearsAtCompany,
			&sub.YearsTotal,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pending submission: %w", err)
		}
		out = append(out, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending submissions: %w", err)
	}
	return out, nil
}
