package interpret

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/contextboard/internal/model"
)

const fallbackConfidence = 0.5

var (
	percentOffPattern = regexp.MustCompile(`(\d+)\s*%\s*off\b`)
	integerPattern    = regexp.MustCompile(`\b\d+\b`)
	freePattern       = regexp.MustCompile(`\bfree\b`)
	buyPattern        = regexp.MustCompile(`\bbuy\b`)
	itemPattern       = regexp.MustCompile(`\b(item|product)s?\b`)
)

// Fallback is the last-resort keyword interpreter. It is pure and offline.
type Fallback struct{}

// NewFallback creates the keyword interpreter
func NewFallback() *Fallback {
	return &Fallback{}
}

// Name identifies the tier in logs
func (f *Fallback) Name() string {
	return string(model.SourceFallback)
}

// Interpret applies independent keyword checks and accumulates their concepts
func (f *Fallback) Interpret(_ context.Context, phrase string) *model.SemanticInterpretation {
	text := strings.ToLower(phrase)
	var concepts []model.Concept

	if m := percentOffPattern.FindStringSubmatch(text); m != nil {
		concepts = append(concepts, model.NewConcept(model.ConceptBenefit, m[1]+"_percent_off"))
	}

	if freePattern.MatchString(text) {
		concepts = append(concepts, model.NewConcept(model.ConceptBenefit, "free"))
	}

	if buyPattern.MatchString(text) {
		concepts = append(concepts, model.NewConcept(model.ConceptAction, "buy"))
	}

	if n, ok := firstBareInteger(text); ok {
		concepts = append(concepts, model.NewQuantity(float64(n)))
	}

	if m := itemPattern.FindStringSubmatch(text); m != nil {
		concepts = append(concepts, model.NewConcept(model.ConceptItem, m[1]))
	}

	if len(concepts) == 0 {
		return nil
	}

	return &model.SemanticInterpretation{
		Intent:     model.IntentPurchase,
		Concepts:   concepts,
		Source:     model.SourceFallback,
		Confidence: fallbackConfidence,
	}
}

// firstBareInteger finds the first integer that is not a percentage
func firstBareInteger(text string) (int, bool) {
	for _, loc := range integerPattern.FindAllStringIndex(text, -1) {
		rest := strings.TrimLeft(text[loc[1]:], " ")
		if strings.HasPrefix(rest, "%") {
			continue
		}
		n, err := strconv.Atoi(text[loc[0]:loc[1]])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}
