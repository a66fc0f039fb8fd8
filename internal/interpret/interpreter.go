// Package interpret turns a free-text phrase into a SemanticInterpretation
// using a fixed chain of interpreters: the promotion catalog, an external
// language model and an offline keyword fallback.
package interpret

import (
	"context"
	"errors"

	"github.com/ppiankov/contextboard/internal/model"
)

// Interpreter is one tier of the interpretation chain.
// A nil result means "no interpretation"; tiers never return errors.
type Interpreter interface {
	Name() string
	Interpret(ctx context.Context, phrase string) *model.SemanticInterpretation
}

var (
	// ErrEmptyPhrase is returned for empty or whitespace-only input
	ErrEmptyPhrase = errors.New("please enter a phrase to interpret")

	// ErrUninterpretable is returned when every tier came back empty
	ErrUninterpretable = errors.New("could not interpret phrase")

	// ErrValidation is returned when the final accepted interpretation fails concept checks
	ErrValidation = errors.New("interpretation failed validation")
)
