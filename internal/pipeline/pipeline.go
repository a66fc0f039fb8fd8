// Package pipeline wires interpretation, card mapping and board assembly
// into the single phrase-to-board entry point.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/contextboard/internal/board"
	"github.com/ppiankov/contextboard/internal/catalog"
	"github.com/ppiankov/contextboard/internal/interpret"
	"github.com/ppiankov/contextboard/internal/llm"
	"github.com/ppiankov/contextboard/internal/model"
	"github.com/ppiankov/contextboard/internal/session"
	"github.com/ppiankov/contextboard/internal/worker"
)

// Pipeline turns a phrase plus a vocabulary snapshot into a context board
type Pipeline struct {
	orchestrator *interpret.Orchestrator
	mapper       *board.Mapper
	assembler    *board.Assembler
	external     *interpret.External
	logger       *zap.Logger
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLogger sets the pipeline logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithAssembler replaces the board assembler (clock and id generation)
func WithAssembler(a *board.Assembler) Option {
	return func(p *Pipeline) { p.assembler = a }
}

// New creates a pipeline around an orchestrator
func New(orchestrator *interpret.Orchestrator, opts ...Option) *Pipeline {
	p := &Pipeline{
		orchestrator: orchestrator,
		mapper:       board.NewMapper(),
		assembler:    board.NewAssembler(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig builds the standard library, external, fallback pipeline.
// A provider that cannot be initialized disables the external tier.
func NewFromConfig(cfg *model.Config, logger *zap.Logger, opts ...Option) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cat, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		llmConfig := llm.ConfigFromModel(cfg.LLM)
		llmConfig.Logger = logger
		p, err := llm.NewProvider(llmConfig)
		if err != nil {
			logger.Warn("external interpreter disabled", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		} else {
			provider = p
		}
	}

	external := interpret.NewExternal(provider,
		interpret.WithLimiter(worker.NewLimiter(cfg.LLM.RequestsPerSecond, cfg.LLM.Burst)),
		interpret.WithLogger(logger),
		interpret.WithMaxTokens(cfg.LLM.MaxTokens),
	)

	orchestrator := interpret.NewDefaultOrchestrator(logger,
		interpret.NewMatcher(cat, cfg.Matcher.Threshold),
		external,
		interpret.NewFallback(),
	)

	p := New(orchestrator, append([]Option{WithLogger(logger)}, opts...)...)
	p.external = external
	return p, nil
}

// ExternalEnabled reports whether an external interpreter is configured
func (p *Pipeline) ExternalEnabled() bool {
	return p.external.Enabled()
}

// Interpret runs the full pipeline. Every outcome, including failures, is
// reported as a BoardResult.
func (p *Pipeline) Interpret(ctx context.Context, phrase string, vocabulary []model.Card) model.BoardResult {
	interp, err := p.orchestrator.Interpret(ctx, phrase)
	if err != nil {
		p.logger.Info("interpretation failed", zap.String("phrase", phrase), zap.Error(err))
		return model.BoardResult{
			Success: false,
			Error:   err.Error(),
			Source:  model.SourceError,
		}
	}

	p.logger.Info("interpreted phrase",
		zap.String("phrase", phrase),
		zap.String("source", string(interp.Source)),
		zap.Float64("confidence", interp.Confidence),
		zap.Stringers("concepts", interp.Concepts))

	cards := p.mapper.MapConceptsToCards(interp.Concepts, vocabulary)
	b := p.assembler.Assemble(phrase, *interp, cards, vocabulary)

	p.logger.Debug("assembled board",
		zap.String("board", b.ID),
		zap.Int("cards", len(b.Cards)))

	return model.BoardResult{
		Success: true,
		Board:   &b,
		Source:  interp.Source,
	}
}

// InterpretSession runs Interpret on behalf of a session. A successful board
// replaces the session's current board unless a newer phrase for the same
// session started meanwhile. It reports whether the board was installed.
func (p *Pipeline) InterpretSession(ctx context.Context, store *session.Store, sessionID, phrase string, vocabulary []model.Card) (model.BoardResult, bool) {
	ticket := store.Begin(sessionID)
	result := p.Interpret(ctx, phrase, vocabulary)
	if !result.Success {
		return result, false
	}

	installed := store.Commit(ticket, result.Board)
	if !installed {
		p.logger.Debug("discarding superseded board", zap.String("session", sessionID), zap.String("phrase", phrase))
	}
	return result, installed
}
