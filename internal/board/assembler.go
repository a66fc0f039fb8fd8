package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/contextboard/internal/model"
)

const (
	namePrefix   = "Context: "
	nameMaxRunes = 30
	nameEllipsis = "..."
)

// Assembler merges concept cards with essentials into a bounded board
type Assembler struct {
	now   func() time.Time
	newID func() string
}

// AssemblerOption configures an Assembler
type AssemblerOption func(*Assembler)

// WithClock overrides the board timestamp source
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) { a.now = now }
}

// WithIDGenerator overrides board id generation
func WithIDGenerator(newID func() string) AssemblerOption {
	return func(a *Assembler) { a.newID = newID }
}

// NewAssembler creates an assembler using wall-clock time and random UUIDs
func NewAssembler(opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the board: concept cards first, then essentials not
// already present, truncated to model.MaxBoardSize
func (a *Assembler) Assemble(phrase string, interpretation model.SemanticInterpretation, conceptCards, vocabulary []model.Card) model.ContextBoard {
	cards := make([]model.Card, 0, model.MaxBoardSize)
	present := make(map[int64]bool, len(conceptCards))

	for _, c := range conceptCards {
		cards = append(cards, c)
		present[c.ID] = true
	}

	for _, e := range SelectEssentials(vocabulary) {
		if present[e.ID] {
			continue
		}
		present[e.ID] = true
		cards = append(cards, e)
	}

	if len(cards) > model.MaxBoardSize {
		cards = cards[:model.MaxBoardSize]
	}

	return model.ContextBoard{
		ID:             a.newID(),
		Name:           BoardName(phrase),
		Phrase:         phrase,
		Interpretation: interpretation,
		Cards:          cards,
		CreatedAt:      a.now(),
	}
}

// SelectEssentials returns the vocabulary cards matching Essentials, in
// Essentials order; missing essentials are omitted
func SelectEssentials(vocabulary []model.Card) []model.Card {
	var selected []model.Card
	for _, text := range Essentials {
		for _, card := range vocabulary {
			if card.MatchesText(text) {
				selected = append(selected, card)
				break
			}
		}
	}
	return selected
}

// BoardName derives the board title from the phrase
func BoardName(phrase string) string {
	runes := []rune(phrase)
	if len(runes) <= nameMaxRunes {
		return namePrefix + phrase
	}
	return namePrefix + string(runes[:nameMaxRunes]) + nameEllipsis
}
