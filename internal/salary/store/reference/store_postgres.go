package reference

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore reads the lookup lists from the postes and villes tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed reference store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListTitles(ctx context.Context) ([]string, error) {
	return s.listColumn(ctx, `SELECT nom FROM postes ORDER BY nom`)
}

func (s *PostgresStore) ListCities(ctx context.Context) ([]string, error) {
	return s.listColumn(ctx, `SELECT nom_ville FROM villes ORDER BY nom_ville`)
}

func (s *PostgresStore) listColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reference values: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan reference value: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reference values: %w", err)
	}
	return out, nil
}
