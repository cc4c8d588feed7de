package complaint

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a Store over an embedded SQLite database, creating
// the complaints table if needed. For deployments without a Postgres
// instance.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (Store, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS complaints (
			complaint_id TEXT PRIMARY KEY,
			created_at   TEXT NOT NULL,
			fields       TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("init complaints table: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Append(ctx context.Context, c *PersistedComplaint) error {
	fields, err := json.Marshal(c.Fields)
	if err != nil {
		return fmt.Errorf("encode complaint fields: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO complaints (complaint_id, created_at, fields)
		VALUES (?, ?, ?)
	`,
		c.ComplaintID,
		c.CreatedAt.Format(time.RFC3339),
		string(fields),
	)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM complaints`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count complaints: %w", err)
	}
	return count, nil
}
