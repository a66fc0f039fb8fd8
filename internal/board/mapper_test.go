package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contextboard/internal/model"
)

func vocabulary() []model.Card {
	return []model.Card{
		{ID: 1, Text: "I want", Symbol: "🙋", Category: "Core", Color: "#FFFFFF"},
		{ID: 2, Text: "Please", Symbol: "🙏", Category: "Social"},
		{ID: 3, Text: "Thank you", Symbol: "😊", Category: "Social"},
		{ID: 4, Text: "Yes", Symbol: "👍", Category: "Core"},
		{ID: 5, Text: "No", Symbol: "👎", Category: "Core"},
		{ID: 6, Text: "Help", Symbol: "🆘", Category: "Core"},
		{ID: 7, Text: "Buy", Symbol: "🛍️", Category: "Actions"},
		{ID: 8, Text: "Shop", Symbol: "🏬", Category: "Actions"},
		{ID: 9, Text: "Grab", Symbol: "✊", Category: "Actions"},
		{ID: 10, Text: "Free gift bag", Symbol: "🎁", Category: "Things"},
	}
}

func TestMapConceptsToCards_ScenarioD(t *testing.T) {
	cards := NewMapper().MapConceptsToCards(
		[]model.Concept{model.NewQuantity(2)},
		vocabulary(),
	)

	require.Len(t, cards, 1)
	c := cards[0]
	assert.Equal(t, int64(-1), c.ID)
	assert.Equal(t, "2 items", c.Text)
	assert.True(t, c.Temporary)
	assert.Equal(t, model.ConceptQuantity, c.ConceptType)
	require.NotNil(t, c.ConceptValue)
	assert.Equal(t, 2.0, c.ConceptValue.Number())
	assert.Equal(t, "Quantity", c.Category)
	assert.Equal(t, "🔢", c.Symbol)
	assert.Equal(t, "#FFD54F", c.Color)
}

func TestMapConceptsToCards_ScenarioE(t *testing.T) {
	cards := NewMapper().MapConceptsToCards(
		[]model.Concept{model.NewConcept(model.ConceptAction, "buy")},
		vocabulary(),
	)

	require.Len(t, cards, 1)
	assert.Equal(t, int64(7), cards[0].ID)
	assert.False(t, cards[0].Temporary)
	assert.Equal(t, "🛍️", cards[0].Symbol, "vocabulary card is reused unchanged")
}

func TestMapConceptsToCards_MatchOrder(t *testing.T) {
	m := NewMapper()

	// containment of the normalized value
	cards := m.MapConceptsToCards([]model.Concept{model.NewConcept(model.ConceptBenefit, "free_gift")}, vocabulary())
	require.Len(t, cards, 1)
	assert.Equal(t, int64(10), cards[0].ID)

	// synonym table
	cards = m.MapConceptsToCards([]model.Concept{model.NewConcept(model.ConceptAction, "take")}, vocabulary())
	require.Len(t, cards, 1)
	assert.Equal(t, int64(9), cards[0].ID)

	// display text beats synonyms
	vocab := []model.Card{{ID: 20, Text: "Purchase"}, {ID: 21, Text: "buy"}}
	cards = m.MapConceptsToCards([]model.Concept{model.NewConcept(model.ConceptAction, "buy")}, vocab)
	require.Len(t, cards, 1)
	assert.Equal(t, int64(21), cards[0].ID)
}

func TestMapConceptsToCards_NoDuplicateIDs(t *testing.T) {
	concepts := []model.Concept{
		model.NewConcept(model.ConceptAction, "buy"),
		model.NewQuantity(2),
		model.NewConcept(model.ConceptPayment, "pay_for_one"),
		model.NewConcept(model.ConceptBenefit, "second_item_free"),
		model.NewConcept(model.ConceptAction, "buy"),
		model.NewConcept(model.ConceptModifier, "weekend_only"),
		model.NewQuantity(2),
	}

	cards := NewMapper().MapConceptsToCards(concepts, vocabulary())

	seen := make(map[int64]bool)
	for _, c := range cards {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
		if c.ID < 0 {
			assert.True(t, c.Temporary)
		}
	}

	// the second "buy" reuses card 7, which is already present
	assert.Len(t, cards, 6)
	assert.Equal(t, []int64{7, -1, -2, -3, -4, -5}, ids(cards))
}

func TestMapConceptsToCards_CounterRestartsPerCall(t *testing.T) {
	m := NewMapper()
	concepts := []model.Concept{model.NewQuantity(1), model.NewConcept(model.ConceptItem, "ticket")}

	first := m.MapConceptsToCards(concepts, nil)
	second := m.MapConceptsToCards(concepts, nil)
	assert.Equal(t, []int64{-1, -2}, ids(first))
	assert.Equal(t, ids(first), ids(second))
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		concept model.Concept
		want    string
	}{
		{model.NewQuantity(1), "1 item"},
		{model.NewQuantity(0), "0 items"},
		{model.NewQuantity(2.5), "2.5 items"},
		{model.NewConcept(model.ConceptPayment, "pay_for_one"), "Pay for 1"},
		{model.NewConcept(model.ConceptModifier, "weekend_only"), "Weekend Only"},
		{model.NewConcept(model.ConceptBenefit, "30_percent_off"), "30 Percent Off"},
		{model.Concept{Type: model.ConceptBenefit, Value: model.NumberValue(50)}, "50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayText(tt.concept), tt.concept.String())
	}
}

func TestSymbolAndColorDefaults(t *testing.T) {
	assert.Equal(t, "🛒", Symbol(model.NewConcept(model.ConceptAction, "buy")))
	assert.Equal(t, "👉", Symbol(model.NewConcept(model.ConceptAction, "juggle")))
	assert.Equal(t, "❓", Symbol(model.NewConcept("emotion", "happy")))

	assert.Equal(t, "#4FC3F7", Color(model.ConceptAction))
	assert.Equal(t, "#BDBDBD", Color("emotion"))
}

func TestTables_CoverEveryConceptType(t *testing.T) {
	for _, ct := range model.ConceptTypes {
		_, ok := symbolTable[ct][""]
		assert.True(t, ok, "missing default symbol for %s", ct)
		_, ok = palette[ct]
		assert.True(t, ok, "missing color for %s", ct)
	}
}

func ids(cards []model.Card) []int64 {
	out := make([]int64, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
