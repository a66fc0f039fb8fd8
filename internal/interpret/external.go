package interpret

import (
	"context"

	"github.com/ppiankov/contextboard/internal/llm"
	"github.com/ppiankov/contextboard/internal/model"
	"github.com/ppiankov/contextboard/internal/worker"
	"go.uber.org/zap"
)

const externalConfidence = 0.75

// External asks a language model for a structured interpretation and
// validates the reply. Every failure is absorbed and logged.
type External struct {
	provider  llm.Provider
	limiter   *worker.Limiter
	logger    *zap.Logger
	maxTokens int
}

// ExternalOption configures an External interpreter
type ExternalOption func(*External)

// WithLimiter throttles provider calls
func WithLimiter(l *worker.Limiter) ExternalOption {
	return func(e *External) { e.limiter = l }
}

// WithLogger sets the logger for absorbed failures
func WithLogger(l *zap.Logger) ExternalOption {
	return func(e *External) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxTokens caps the reply length
func WithMaxTokens(n int) ExternalOption {
	return func(e *External) { e.maxTokens = n }
}

// NewExternal creates the external tier. A nil provider disables it.
func NewExternal(provider llm.Provider, opts ...ExternalOption) *External {
	e := &External{
		provider: provider,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name identifies the tier in logs
func (e *External) Name() string {
	return string(model.SourceExternal)
}

// Enabled reports whether a provider is configured
func (e *External) Enabled() bool {
	return e != nil && e.provider != nil
}

// Interpret returns the validated model interpretation or nil
func (e *External) Interpret(ctx context.Context, phrase string) *model.SemanticInterpretation {
	if e == nil || e.provider == nil {
		return nil
	}

	log := e.logger.With(zap.String("provider", e.provider.Name()))

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx, e.provider.Name()); err != nil {
			log.Warn("rate limiter wait aborted", zap.Error(err))
			return nil
		}
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		System:    llm.InterpretationInstruction,
		Prompt:    llm.BuildInterpretationPrompt(phrase),
		MaxTokens: e.maxTokens,
	})
	if err != nil {
		log.Warn("external interpretation failed", zap.Error(err))
		return nil
	}

	reply, err := ParseReply(resp.Text)
	if err != nil {
		log.Warn("external reply rejected", zap.Error(err), zap.String("model", resp.Model))
		return nil
	}

	log.Debug("external reply accepted",
		zap.String("model", resp.Model),
		zap.Int("tokens", resp.TokensUsed),
		zap.Int("concepts", len(reply.Concepts)))

	return &model.SemanticInterpretation{
		Intent:     reply.Intent,
		Concepts:   reply.Concepts,
		Source:     model.SourceExternal,
		Confidence: externalConfidence,
	}
}
