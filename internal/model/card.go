package model

import "strings"

// Card is a single symbol card the user can select
type Card struct {
	ID       int64  `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Category string `json:"category" yaml:"category"`
	Color    string `json:"color" yaml:"color"`

	// Temporary cards exist only on the board that minted them
	Temporary    bool        `json:"temporary,omitempty" yaml:"temporary,omitempty"`
	ConceptType  ConceptType `json:"concept_type,omitempty" yaml:"concept_type,omitempty"`
	ConceptValue *Value      `json:"concept_value,omitempty" yaml:"concept_value,omitempty"`
}

// Promote returns the permanent form of a temporary card. The temporary
// fields are stripped and the id is cleared so the store can assign one.
func (c Card) Promote() Card {
	return Card{
		Text:     c.Text,
		Symbol:   c.Symbol,
		Category: c.Category,
		Color:    c.Color,
	}
}

// MatchesText reports an exact case-insensitive text match
func (c Card) MatchesText(text string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Text), strings.TrimSpace(text))
}
