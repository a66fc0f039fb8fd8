package interpret

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ppiankov/contextboard/internal/llm"
	"github.com/ppiankov/contextboard/internal/model"
	"github.com/ppiankov/contextboard/internal/worker"
)

// stubProvider returns a canned reply and records the last request
type stubProvider struct {
	reply string
	err   error
	calls int
	last  llm.CompletionRequest
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Text: s.reply, Model: "stub-1", TokensUsed: 12}, nil
}

func (s *stubProvider) IsAvailable(context.Context) bool { return s.err == nil }

func TestExternal_Success(t *testing.T) {
	p := &stubProvider{reply: "```json\n{\"intent\":\"purchase\",\"concepts\":[{\"type\":\"action\",\"value\":\"buy\"},{\"type\":\"quantity\",\"value\":3}]}\n```"}
	e := NewExternal(p, WithMaxTokens(200), WithLimiter(worker.NewLimiter(0, 1)))

	got := e.Interpret(context.Background(), "grab three of them")
	require.NotNil(t, got)
	assert.Equal(t, model.SourceExternal, got.Source)
	assert.Equal(t, 0.75, got.Confidence)
	assert.Equal(t, "purchase", got.Intent)
	assert.Equal(t, []model.Concept{
		model.NewConcept(model.ConceptAction, "buy"),
		model.NewQuantity(3),
	}, got.Concepts)

	assert.Equal(t, llm.InterpretationInstruction, p.last.System)
	assert.Contains(t, p.last.Prompt, `"grab three of them"`)
	assert.Equal(t, 200, p.last.MaxTokens)
}

func TestExternal_AbsorbsFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{"provider error", &stubProvider{err: errors.New("connection refused")}},
		{"unparseable", &stubProvider{reply: "Sorry, I can't do that."}},
		{"word quantity", &stubProvider{reply: `{"intent":"purchase","concepts":[{"type":"quantity","value":"two"}]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			e := NewExternal(tt.provider, WithLogger(zap.New(core)))

			assert.Nil(t, e.Interpret(context.Background(), "anything"))
			assert.Equal(t, 1, tt.provider.calls)
			assert.Equal(t, 1, logs.Len())
		})
	}
}

func TestExternal_Disabled(t *testing.T) {
	e := NewExternal(nil)
	assert.False(t, e.Enabled())
	assert.Nil(t, e.Interpret(context.Background(), "buy stuff"))

	var nilExternal *External
	assert.False(t, nilExternal.Enabled())
	assert.Nil(t, nilExternal.Interpret(context.Background(), "buy stuff"))
}

func TestExternal_CancelledWhileRateLimited(t *testing.T) {
	p := &stubProvider{reply: `{"intent":"purchase","concepts":[]}`}
	limiter := worker.NewLimiter(0.001, 1)
	require.NoError(t, limiter.Wait(context.Background(), "stub"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewExternal(p, WithLimiter(limiter))
	assert.Nil(t, e.Interpret(ctx, "anything"))
	assert.Equal(t, 0, p.calls)
}
