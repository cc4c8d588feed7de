package complaint

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/David-0705/robbery-complaint-bot/internal/genai"
)

// Trust is the responder's judgement of the generation backend for one
// session. The only transition is Trusted -> Degraded; a degraded session
// never trusts the backend again.
type Trust string

const (
	TrustTrusted  Trust = "trusted"
	TrustDegraded Trust = "degraded"
)

// Responder phrases every message the user sees. While the backend is
// trusted it asks the generator to word the message; once degraded it serves
// fixed templates and never calls the generator again.
type Responder struct {
	gen   genai.Generator
	trust Trust
	log   *zap.Logger
}

func NewResponder(gen genai.Generator, log *zap.Logger) *Responder {
	return &Responder{
		gen:   gen,
		trust: TrustTrusted,
		log:   log,
	}
}

func (r *Responder) Trust() Trust {
	return r.trust
}

func (r *Responder) Degraded() bool {
	return r.trust == TrustDegraded
}

// Greet phrases the opening message of a session.
func (r *Responder) Greet(ctx context.Context, first Field) string {
	return r.deliver(ctx, greetingPrompt(first), fallbackGreeting(first))
}

// Acknowledge phrases the reaction to a successful extraction: confirm the
// value just captured for prev, then ask next's question.
func (r *Responder) Acknowledge(ctx context.Context, value string, prev, next Field) string {
	return r.deliver(ctx, acknowledgePrompt(value, prev, next), fallbackFor(next))
}

// Clarify re-asks the current target's question after a failed extraction.
func (r *Responder) Clarify(ctx context.Context, userText string, target Field) string {
	return r.deliver(ctx, clarifyPrompt(userText, target), fallbackFor(target))
}

// deliver runs the two-tier strategy for one message: fallback text when
// degraded, otherwise the generator's reply unless it fails or refuses, in
// which case the session degrades permanently and the fallback is served.
func (r *Responder) deliver(ctx context.Context, prompt, fallback string) string {
	if r.trust == TrustDegraded {
		return fallback
	}

	reply, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		r.degrade("generator failed", err)
		return fallback
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		r.degrade("generator returned empty reply", nil)
		return fallback
	}
	if refusal(reply) {
		r.degrade("generator refused", nil)
		return fallback
	}

	return reply
}

func refusal(reply string) bool {
	lower := strings.ToLower(reply)
	return strings.Contains(lower, "cannot") || strings.Contains(lower, "can't")
}

func (r *Responder) degrade(reason string, err error) {
	r.trust = TrustDegraded
	r.log.Warn("switching session to fallback responses",
		zap.String("reason", reason),
		zap.Error(err),
	)
}
