package interpret

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/contextboard/internal/model"
)

// Orchestrator runs interpreters strictly in order and returns the first
// valid interpretation
type Orchestrator struct {
	tiers  []Interpreter
	logger *zap.Logger
}

// NewOrchestrator creates an orchestrator over an ordered tier list
func NewOrchestrator(logger *zap.Logger, tiers ...Interpreter) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{tiers: tiers, logger: logger}
}

// NewDefaultOrchestrator wires the standard library, external, fallback chain
func NewDefaultOrchestrator(logger *zap.Logger, matcher *Matcher, external *External, fallback *Fallback) *Orchestrator {
	return NewOrchestrator(logger, matcher, external, fallback)
}

// Interpret produces an interpretation for phrase.
//
// An empty phrase fails with ErrEmptyPhrase before any tier runs. A result
// that fails concept validation at a non-final tier is skipped; at the final
// tier it fails with ErrValidation.
func (o *Orchestrator) Interpret(ctx context.Context, phrase string) (*model.SemanticInterpretation, error) {
	if strings.TrimSpace(phrase) == "" {
		return nil, ErrEmptyPhrase
	}

	last := len(o.tiers) - 1
	for i, tier := range o.tiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := tier.Interpret(ctx, phrase)
		if result == nil {
			o.logger.Debug("tier returned no result", zap.String("tier", tier.Name()))
			continue
		}

		if err := result.Validate(); err != nil {
			if i == last {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			o.logger.Warn("discarding invalid interpretation",
				zap.String("tier", tier.Name()),
				zap.Error(err))
			continue
		}

		return result, nil
	}

	return nil, ErrUninterpretable
}
