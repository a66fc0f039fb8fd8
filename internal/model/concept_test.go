package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConcept_Validate(t *testing.T) {
	tests := []struct {
		name    string
		concept Concept
		wantErr bool
	}{
		{"action", NewConcept(ConceptAction, "buy"), false},
		{"numeric quantity", NewQuantity(2), false},
		{"string quantity", NewConcept(ConceptQuantity, "two"), true},
		{"unknown type", NewConcept("emotion", "happy"), true},
		{"empty type", Concept{Value: StringValue("x")}, true},
		{"blank value", NewConcept(ConceptItem, "   "), true},
		{"numeric benefit", Concept{Type: ConceptBenefit, Value: NumberValue(50)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.concept.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var c Concept
	require.NoError(t, json.Unmarshal([]byte(`{"type":"quantity","value":2}`), &c))
	assert.True(t, c.Value.IsNumeric())
	assert.Equal(t, 2.0, c.Value.Number())
	assert.Equal(t, "2", c.Value.String())

	require.NoError(t, json.Unmarshal([]byte(`{"type":"action","value":"buy"}`), &c))
	assert.False(t, c.Value.IsNumeric())
	assert.Equal(t, "buy", c.Value.String())

	for _, bad := range []string{
		`{"type":"action","value":true}`,
		`{"type":"action","value":null}`,
		`{"type":"action","value":{"a":1}}`,
		`{"type":"action","value":["buy"]}`,
	} {
		assert.Error(t, json.Unmarshal([]byte(bad), &c), bad)
	}
}

func TestValue_YAML(t *testing.T) {
	var concepts []Concept
	src := `
- type: quantity
  value: 2
- type: payment
  value: pay_for_one
- type: modifier
  value: "3"
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &concepts))
	require.Len(t, concepts, 3)
	assert.True(t, concepts[0].Value.IsNumeric())
	assert.False(t, concepts[1].Value.IsNumeric())
	assert.False(t, concepts[2].Value.IsNumeric(), "quoted scalars stay strings")

	out, err := yaml.Marshal(concepts[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), "value: 2")
}

func TestCard_Promote(t *testing.T) {
	v := NumberValue(2)
	card := Card{
		ID:           -1,
		Text:         "2 items",
		Symbol:       "🔢",
		Category:     "Quantity",
		Color:        "#FFD54F",
		Temporary:    true,
		ConceptType:  ConceptQuantity,
		ConceptValue: &v,
	}

	promoted := card.Promote()
	assert.Equal(t, int64(0), promoted.ID)
	assert.False(t, promoted.Temporary)
	assert.Empty(t, promoted.ConceptType)
	assert.Nil(t, promoted.ConceptValue)
	assert.Equal(t, "2 items", promoted.Text)
	assert.Equal(t, "Quantity", promoted.Category)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Matcher.Threshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LLM.Provider = "gemini"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}
