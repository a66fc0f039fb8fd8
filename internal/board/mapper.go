// Package board turns interpreted concepts into cards and assembles the
// bounded context board shown to the user.
package board

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ppiankov/contextboard/internal/model"
)

// Mapper converts concepts into cards, reusing vocabulary cards where it can.
// The lookup tables are read-only so a Mapper is safe for concurrent use.
type Mapper struct{}

// NewMapper creates a mapper over the built-in lookup tables
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapConceptsToCards returns one card per concept in input order. Vocabulary
// cards are reused at most once; unmatched concepts become temporary cards
// with ids -1, -2, ... counted per call.
func (m *Mapper) MapConceptsToCards(concepts []model.Concept, vocabulary []model.Card) []model.Card {
	cards := make([]model.Card, 0, len(concepts))
	used := make(map[int64]bool)
	nextTempID := int64(-1)

	for _, c := range concepts {
		text := DisplayText(c)

		if card, ok := findVocabularyCard(c, text, vocabulary); ok {
			if !used[card.ID] {
				used[card.ID] = true
				cards = append(cards, card)
			}
			continue
		}

		cards = append(cards, temporaryCard(c, text, nextTempID))
		nextTempID--
	}

	return cards
}

// DisplayText is the canonical card text for a concept
func DisplayText(c model.Concept) string {
	if c.Type == model.ConceptQuantity {
		unit := "items"
		if c.Value.IsNumeric() && c.Value.Number() == 1 {
			unit = "item"
		}
		return c.Value.String() + " " + unit
	}

	value := c.Value.String()
	if text, ok := textTemplates[c.Type][value]; ok {
		return text
	}
	return titleCase(strings.ReplaceAll(value, "_", " "))
}

// Symbol returns the emoji for a concept: per value, then per type, then global
func Symbol(c model.Concept) string {
	table, ok := symbolTable[c.Type]
	if !ok {
		return globalSymbol
	}
	if s, ok := table[c.Value.String()]; ok {
		return s
	}
	return table[""]
}

// Color returns the palette color for a concept type
func Color(t model.ConceptType) string {
	if c, ok := palette[t]; ok {
		return c
	}
	return defaultColor
}

// findVocabularyCard applies the match rules in order: display text,
// containment of the normalized value, synonyms
func findVocabularyCard(c model.Concept, text string, vocabulary []model.Card) (model.Card, bool) {
	for _, card := range vocabulary {
		if card.MatchesText(text) {
			return card, true
		}
	}

	value := normalizeValue(c.Value)
	if value != "" {
		for _, card := range vocabulary {
			if strings.Contains(strings.ToLower(card.Text), value) {
				return card, true
			}
		}
	}

	for _, syn := range synonyms[c.Value.String()] {
		for _, card := range vocabulary {
			if card.MatchesText(syn) {
				return card, true
			}
		}
	}

	return model.Card{}, false
}

func temporaryCard(c model.Concept, text string, id int64) model.Card {
	value := c.Value
	return model.Card{
		ID:           id,
		Text:         text,
		Symbol:       Symbol(c),
		Category:     titleCase(string(c.Type)),
		Color:        Color(c.Type),
		Temporary:    true,
		ConceptType:  c.Type,
		ConceptValue: &value,
	}
}

func normalizeValue(v model.Value) string {
	return strings.TrimSpace(strings.ToLower(strings.ReplaceAll(v.String(), "_", " ")))
}

// titleCase builds a fresh caser per call; cases.Caser is not goroutine safe
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
