package model

// Source records which interpreter tier produced an interpretation
type Source string

const (
	SourceLibrary  Source = "library"
	SourceExternal Source = "external"
	SourceFallback Source = "fallback"
	SourceError    Source = "error"
)

// IntentPurchase is the intent reported by the catalog and fallback tiers
const IntentPurchase = "purchase"

// SemanticInterpretation is the meaning extracted from one phrase
type SemanticInterpretation struct {
	Intent     string    `json:"intent" yaml:"intent"`
	Concepts   []Concept `json:"concepts" yaml:"concepts"`
	Source     Source    `json:"source" yaml:"source"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
}

// Validate applies the shared concept rules to every concept
func (s *SemanticInterpretation) Validate() error {
	return ValidateConcepts(s.Concepts)
}

// VisualHints carries presentation suggestions for a catalog entry
type VisualHints struct {
	Emphasis []ConceptType `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
	Layout   string        `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// PromotionMapping maps a family of promotional phrases to a concept set
type PromotionMapping struct {
	ID          string      `json:"id" yaml:"id" validate:"required"`
	Patterns    []string    `json:"patterns" yaml:"patterns" validate:"required,min=1,dive,required"`
	Concepts    []Concept   `json:"concepts" yaml:"concepts" validate:"required,min=1,dive"`
	Priority    int         `json:"priority" yaml:"priority"`
	VisualHints VisualHints `json:"visual_hints" yaml:"visual_hints"`
}

// Validate checks the mapping's structure and every concept
func (m PromotionMapping) Validate() error {
	if err := validateStruct(m); err != nil {
		return err
	}
	return ValidateConcepts(m.Concepts)
}
