package complaint

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/David-0705/robbery-complaint-bot/internal/genai"
)

type service struct {
	registry *Registry
	store    Store
	gen      genai.Generator
	log      *zap.Logger
}

// NewService wires the conversation engine: a registry of sessions, each
// built over its own responder and a shared store-backed bridge.
func NewService(schema Schema, store Store, gen genai.Generator, ttl time.Duration, now func() time.Time, log *zap.Logger) (Service, *Registry) {
	if now == nil {
		now = time.Now
	}
	bridge := NewBridge(schema, store, now, log)

	registry := NewRegistry(ttl, now, func(id string) *Session {
		return NewSession(id, schema, NewResponder(gen, log), bridge, log)
	}, log)

	return &service{
		registry: registry,
		store:    store,
		gen:      gen,
		log:      log,
	}, registry
}

func (s *service) Start(ctx context.Context, sessionID string) (string, TurnResult, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	sess := s.registry.Get(sessionID)
	return sessionID, sess.Start(ctx), nil
}

func (s *service) Message(ctx context.Context, sessionID, text string) (TurnResult, error) {
	sess := s.registry.Get(sessionID)
	return sess.Handle(ctx, text)
}

func (s *service) Reset(_ context.Context, sessionID string) error {
	if sess, ok := s.registry.Lookup(sessionID); ok {
		sess.Reset()
	}
	return nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

func (s *service) Status(ctx context.Context) (Status, error) {
	st := Status{ActiveSessions: s.registry.Len()}

	count, err := s.store.Count(ctx)
	if err == nil {
		st.StoreConnected = true
		st.ComplaintCount = count
	} else {
		s.log.Warn("store unreachable", zap.Error(err))
	}

	if p, ok := s.gen.(genai.Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			st.GeneratorMessage = err.Error()
		} else {
			st.GeneratorConnected = true
			st.GeneratorMessage = "generator reachable"
		}
	} else {
		st.GeneratorMessage = "generator does not support probing"
	}

	return st, nil
}
