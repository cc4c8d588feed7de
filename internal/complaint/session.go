package complaint

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// TurnResult is what one conversational turn hands back to the transport.
type TurnResult struct {
	Message       string
	ComplaintID   string
	CurrentStep   int
	TotalSteps    int
	Completed     bool
	Degraded      bool
	CollectedData map[string]string
}

// Session binds one schema, state machine, responder and record to a single
// ongoing dialogue. Turns are serialized by the session's mutex; different
// sessions share nothing mutable.
type Session struct {
	mu sync.Mutex

	id        string
	schema    Schema
	machine   *Machine
	responder *Responder
	bridge    *Bridge
	log       *zap.Logger

	started   bool
	persisted bool
}

func NewSession(id string, schema Schema, responder *Responder, bridge *Bridge, log *zap.Logger) *Session {
	return &Session{
		id:        id,
		schema:    schema,
		machine:   NewMachine(schema),
		responder: responder,
		bridge:    bridge,
		log:       log.With(zap.String("session_id", id)),
	}
}

// Start opens the conversation. The greeting is sent once; starting an
// already-started session yields a welcome-back message instead.
func (s *Session) Start(ctx context.Context) TurnResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msg string
	if s.started {
		msg = msgWelcomeBack
	} else {
		s.started = true
		if first, ok := s.machine.NextTarget(); ok {
			msg = s.responder.Greet(ctx, first)
		} else {
			msg = msgAlreadyComplete
		}
	}

	return s.result(msg, "")
}

// Handle processes one user turn: extract a value for the current target,
// advance on a hit, clarify on a miss, and persist exactly once when the
// last field lands. The returned error is an internal invariant breach, not
// a conversational outcome.
func (s *Session) Handle(ctx context.Context, text string) (TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.machine.NextTarget()
	if !ok {
		// Completed sessions answer idempotently: no extraction, no
		// second save.
		return s.result(msgAlreadyComplete, ""), nil
	}

	value, ok := Extract(text, target.Key)
	if !ok {
		s.log.Debug("extraction miss", zap.String("field", target.Key))
		return s.result(s.responder.Clarify(ctx, text, target), ""), nil
	}

	if err := s.machine.Advance(target.Key, value); err != nil {
		return TurnResult{}, err
	}
	s.log.Info("field collected",
		zap.String("field", target.Key),
		zap.Int("step", s.machine.CollectedCount()),
	)

	var msg string
	if next, more := s.machine.NextTarget(); more {
		msg = s.responder.Acknowledge(ctx, value, target, next)
	} else {
		msg = msgAllCollected
	}

	var complaintID string
	if s.machine.Complete() && !s.persisted {
		// One shot per completed record, success or failure. The record
		// stays intact so an explicit retry out of band is possible, but
		// the session itself never saves again.
		s.persisted = true
		id, err := s.bridge.Save(ctx, s.machine.Record())
		if err != nil {
			msg = msgSaveFailed
		} else {
			complaintID = id
			msg = msgSaved(id)
		}
	}

	return s.result(msg, complaintID), nil
}

// Reset clears the record and the greeting/persistence guards so a new
// complaint can be filed. Backend trust is deliberately preserved: one
// session never re-trusts a generator it has seen fail.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.Reset()
	s.started = false
	s.persisted = false
}

func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responder.Degraded()
}

// result snapshots the current progress; callers hold s.mu.
func (s *Session) result(msg, complaintID string) TurnResult {
	res := TurnResult{
		Message:     msg,
		ComplaintID: complaintID,
		CurrentStep: s.machine.CollectedCount(),
		TotalSteps:  len(s.schema),
		Completed:   s.machine.Complete(),
		Degraded:    s.responder.Degraded(),
	}
	if res.Completed {
		res.CollectedData = s.machine.Record()
	}
	return res
}
