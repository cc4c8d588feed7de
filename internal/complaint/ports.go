package complaint

import (
	"context"
	"time"
)

// PersistedComplaint is the immutable row written once per completed session.
// Fields always carries every schema key; values never collected are empty.
type PersistedComplaint struct {
	ComplaintID string
	CreatedAt   time.Time
	Fields      map[string]string
}

// Store — durable complaint storage.
type Store interface {
	Append(ctx context.Context, c *PersistedComplaint) error
	Count(ctx context.Context) (int, error)
}

// Service — orchestration over sessions, generator and store.
type Service interface {
	Start(ctx context.Context, sessionID string) (string, TurnResult, error)
	Message(ctx context.Context, sessionID, text string) (TurnResult, error)
	Reset(ctx context.Context, sessionID string) error
	Count(ctx context.Context) (int, error)
	Status(ctx context.Context) (Status, error)
}

// Status is the snapshot served by GET /api/status.
type Status struct {
	StoreConnected     bool
	GeneratorConnected bool
	GeneratorMessage   string
	ComplaintCount     int
	ActiveSessions     int
}
