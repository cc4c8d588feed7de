package genai

import (
	"context"
	"errors"
)

// The two failure categories a generation backend can report. Every error a
// client returns wraps exactly one of them, so callers branch with errors.Is
// instead of comparing reply strings.
var (
	ErrBackendError       = errors.New("generation backend error")
	ErrBackendUnreachable = errors.New("generation backend unreachable")
)

// Generator — external text generation, knows nothing about complaints or
// sessions. Any non-error reply is a candidate natural-language message.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Pinger is implemented by clients that can cheaply probe their backend,
// used for status reporting only.
type Pinger interface {
	Ping(ctx context.Context) error
}
