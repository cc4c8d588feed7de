package complaint

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry owns the live sessions of the process. Time is injected so idle
// eviction is deterministic under test; production drives Evict from the
// Janitor loop.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry

	ttl        time.Duration
	now        func() time.Time
	newSession func(id string) *Session
	log        *zap.Logger
}

type registryEntry struct {
	session      *Session
	lastActivity time.Time
}

func NewRegistry(ttl time.Duration, now func() time.Time, newSession func(id string) *Session, log *zap.Logger) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		sessions:   make(map[string]*registryEntry),
		ttl:        ttl,
		now:        now,
		newSession: newSession,
		log:        log,
	}
}

// Get returns the session for id, creating it on first contact. Access
// refreshes the idle clock.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		e = &registryEntry{session: r.newSession(id)}
		r.sessions[id] = e
		r.log.Info("session created", zap.String("session_id", id))
	}
	e.lastActivity = r.now()
	return e.session
}

// Lookup returns the session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastActivity = r.now()
	return e.session, true
}

// Evict drops every session idle longer than the TTL as of now, and reports
// how many were dropped.
func (r *Registry) Evict(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.sessions {
		if now.Sub(e.lastActivity) > r.ttl {
			delete(r.sessions, id)
			evicted++
			r.log.Info("session evicted", zap.String("session_id", id))
		}
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Janitor periodically evicts idle sessions until ctx is done.
func (r *Registry) Janitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Evict(r.now())
		}
	}
}
