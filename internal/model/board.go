package model

import "time"

// MaxBoardSize caps the number of cards on one context board
const MaxBoardSize = 12

// ContextBoard is the bounded set of cards produced for one phrase
type ContextBoard struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Phrase         string                 `json:"phrase"`
	Interpretation SemanticInterpretation `json:"interpretation"`
	Cards          []Card                 `json:"cards"`
	CreatedAt      time.Time              `json:"created_at"`
}

// FindCard returns the card with the given id
func (b *ContextBoard) FindCard(id int64) (Card, bool) {
	for _, c := range b.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// BoardResult is the outcome of one interpretation request
type BoardResult struct {
	Success bool          `json:"success"`
	Board   *ContextBoard `json:"board"`
	Error   string        `json:"error,omitempty"`
	Source  Source        `json:"source"`
}
