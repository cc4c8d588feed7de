package complaint

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type pgStore struct {
	db *sql.DB
}

// NewPostgresStore returns a Store over a Postgres connection, creating the
// complaints table if needed. Field values are kept as a JSONB payload so a
// schema change never needs a migration.
func NewPostgresStore(ctx context.Context, db *sql.DB) (Store, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS complaints (
			complaint_id TEXT PRIMARY KEY,
			created_at   TIMESTAMPTZ NOT NULL,
			fields       JSONB NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("init complaints table: %w", err)
	}
	return &pgStore{db: db}, nil
}

func (s *pgStore) Append(ctx context.Context, c *PersistedComplaint) error {
	fields, err := json.Marshal(c.Fields)
	if err != nil {
		return fmt.Errorf("encode complaint fields: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO complaints (complaint_id, created_at, fields)
		VALUES ($1, $2, $3)
	`,
		c.ComplaintID,
		c.CreatedAt,
		fields,
	)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (s *pgStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM complaints`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count complaints: %w", err)
	}
	return count, nil
}
