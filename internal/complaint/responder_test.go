package complaint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/David-0705/robbery-complaint-bot/internal/genai"
)

type stubGenerator struct {
	generate func(ctx context.Context, prompt string) (string, error)
	calls    int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.generate(ctx, prompt)
}

func okGenerator(reply string) *stubGenerator {
	return &stubGenerator{generate: func(context.Context, string) (string, error) {
		return reply, nil
	}}
}

func failingGenerator(err error) *stubGenerator {
	return &stubGenerator{generate: func(context.Context, string) (string, error) {
		return "", err
	}}
}

func TestResponderReturnsGeneratorReplyVerbatim(t *testing.T) {
	gen := okGenerator("Thank you, John. What is your mobile number?")
	r := NewResponder(gen, zap.NewNop())

	msg := r.Acknowledge(context.Background(), "John Smith",
		Field{Key: "name"}, Field{Key: "mobile", Question: "What is your mobile number?"})

	assert.Equal(t, "Thank you, John. What is your mobile number?", msg)
	assert.Equal(t, TrustTrusted, r.Trust())
}

func TestResponderDegradesOnBackendError(t *testing.T) {
	for _, sentinel := range []error{genai.ErrBackendError, genai.ErrBackendUnreachable} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			gen := failingGenerator(sentinel)
			r := NewResponder(gen, zap.NewNop())

			target := Field{Key: "mobile", Question: "What is your mobile number?"}
			msg := r.Clarify(context.Background(), "huh?", target)

			assert.Equal(t, fallbackFor(target), msg)
			assert.Equal(t, TrustDegraded, r.Trust())
		})
	}
}

func TestResponderDegradesOnRefusal(t *testing.T) {
	gen := okGenerator("I cannot assist with filing police complaints.")
	r := NewResponder(gen, zap.NewNop())

	target := Field{Key: "age", Question: "What is your age?"}
	msg := r.Clarify(context.Background(), "why", target)

	assert.Equal(t, fallbackFor(target), msg)
	assert.True(t, r.Degraded())
}

func TestResponderDegradesOnEmptyReply(t *testing.T) {
	gen := okGenerator("   ")
	r := NewResponder(gen, zap.NewNop())

	target := Field{Key: "email", Question: "What is your email address?"}
	msg := r.Clarify(context.Background(), "hmm", target)

	assert.Equal(t, fallbackFor(target), msg)
	assert.True(t, r.Degraded())
}

func TestResponderDegradationIsPermanent(t *testing.T) {
	replies := []string{"I can't help with that", "a perfectly fine reply"}
	i := 0
	gen := &stubGenerator{generate: func(context.Context, string) (string, error) {
		reply := replies[i]
		if i < len(replies)-1 {
			i++
		}
		return reply, nil
	}}
	r := NewResponder(gen, zap.NewNop())

	target := Field{Key: "mobile", Question: "What is your mobile number?"}

	// First turn: refusal degrades the responder.
	msg := r.Clarify(context.Background(), "hello", target)
	assert.Equal(t, fallbackFor(target), msg)
	assert.True(t, r.Degraded())

	// Every later turn stays on templates and never calls the generator.
	callsAfterDegrade := gen.calls
	for i := 0; i < 3; i++ {
		msg = r.Clarify(context.Background(), "hello again", target)
		assert.Equal(t, fallbackFor(target), msg)
	}
	assert.Equal(t, callsAfterDegrade, gen.calls)
	assert.True(t, r.Degraded())
}

func TestResponderGreetingFallback(t *testing.T) {
	gen := failingGenerator(genai.ErrBackendUnreachable)
	r := NewResponder(gen, zap.NewNop())

	first := Field{Key: "name", Question: "What is your full name?"}
	msg := r.Greet(context.Background(), first)

	assert.Equal(t, "Hello! I'll help you file a robbery complaint. What is your full name?", msg)
	assert.True(t, r.Degraded())
}

func TestFallbackTemplatesCoverDefaultSchema(t *testing.T) {
	for _, f := range DefaultSchema() {
		assert.Contains(t, fallbackTemplates, f.Key)
	}

	custom := Field{Key: "vehicle", Question: "What vehicle was involved?"}
	assert.Equal(t, "Thank you. What vehicle was involved?", fallbackFor(custom))
}
