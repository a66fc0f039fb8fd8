package interpret

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contextboard/internal/model"
)

func TestFallback_Keywords(t *testing.T) {
	f := NewFallback()

	tests := []struct {
		phrase string
		want   []model.Concept
	}{
		{
			phrase: "Save 30% off every item today",
			want: []model.Concept{
				model.NewConcept(model.ConceptBenefit, "30_percent_off"),
				model.NewConcept(model.ConceptItem, "item"),
			},
		},
		{
			phrase: "Buy 4 products, get a FREE tote",
			want: []model.Concept{
				model.NewConcept(model.ConceptBenefit, "free"),
				model.NewConcept(model.ConceptAction, "buy"),
				model.NewQuantity(4),
				model.NewConcept(model.ConceptItem, "product"),
			},
		},
		{
			phrase: "get 3 snacks for the road",
			want:   []model.Concept{model.NewQuantity(3)},
		},
		{
			phrase: "15 % off, then 2 more",
			want: []model.Concept{
				model.NewConcept(model.ConceptBenefit, "15_percent_off"),
				model.NewQuantity(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got := f.Interpret(context.Background(), tt.phrase)
			require.NotNil(t, got)
			assert.Equal(t, model.SourceFallback, got.Source)
			assert.Equal(t, 0.5, got.Confidence)
			assert.Equal(t, model.IntentPurchase, got.Intent)
			assert.Equal(t, tt.want, got.Concepts)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestFallback_NoMatch(t *testing.T) {
	f := NewFallback()
	for _, phrase := range []string{"asdkjasd", "freedom", "buyer beware", "itemize"} {
		assert.Nil(t, f.Interpret(context.Background(), phrase), phrase)
	}
}
