package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contextboard/internal/model"
)

const yamlVocab = `cards:
  - id: 1
    text: I want
    symbol: "🙋"
    category: Core
    color: "#FFFFFF"
  - id: 7
    text: Buy
    symbol: "🛍️"
    category: Actions
`

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlVocab), 0644))

	cards, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, int64(7), cards[1].ID)
	assert.Equal(t, "Buy", cards[1].Text)
	assert.False(t, cards[1].Temporary)
}

func TestLoadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cards":[{"id":3,"text":"Yes","symbol":"👍","category":"Core","color":""}]}`), 0644))

	cards, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Yes", cards[0].Text)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero id":   "cards:\n  - id: 0\n    text: x\n",
		"no text":   "cards:\n  - id: 1\n    text: \"  \"\n",
		"dup id":    "cards:\n  - id: 1\n    text: a\n  - id: 1\n    text: b\n",
		"temporary": "cards:\n  - id: 1\n    text: a\n    temporary: true\n",
		"malformed": "cards: [",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vocab.yaml")
			require.NoError(t, os.WriteFile(path, []byte(src), 0644))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFileStore_Promote(t *testing.T) {
	for _, name := range []string{"vocab.yaml", "vocab.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			store := NewFileStore(path)

			_, err := os.Stat(path)
			require.ErrorIs(t, err, os.ErrNotExist)

			v := model.NumberValue(2)
			temp := model.Card{
				ID:           -1,
				Text:         "2 items",
				Symbol:       "🔢",
				Category:     "Quantity",
				Color:        "#FFD54F",
				Temporary:    true,
				ConceptType:  model.ConceptQuantity,
				ConceptValue: &v,
			}

			first, err := store.Promote(temp)
			require.NoError(t, err)
			assert.Equal(t, int64(1), first.ID)
			assert.False(t, first.Temporary)
			assert.Nil(t, first.ConceptValue)

			temp.Text = "Pay for 1"
			second, err := store.Promote(temp)
			require.NoError(t, err)
			assert.Equal(t, int64(2), second.ID)

			reloaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []model.Card{first, second}, reloaded)
		})
	}
}

func TestFileStore_PromoteRejectsPersistedCard(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "vocab.yaml"))
	_, err := store.Promote(model.Card{ID: 4, Text: "Yes"})
	assert.ErrorIs(t, err, ErrNotTemporary)
}

func TestFileStore_PromoteAfterExistingCards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlVocab), 0644))

	promoted, err := NewFileStore(path).Promote(model.Card{ID: -3, Text: "Coupon", Temporary: true})
	require.NoError(t, err)
	assert.Equal(t, int64(8), promoted.ID)
}
