// Package vocab reads the user's vocabulary snapshot and persists promoted
// temporary cards. The pipeline itself only ever reads vocabulary.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/contextboard/internal/model"
)

// file is the on-disk vocabulary schema, shared by YAML and JSON
type file struct {
	Cards []model.Card `json:"cards" yaml:"cards"`
}

// LoadFile reads a vocabulary file; ".json" files are JSON, anything else YAML
func LoadFile(path string) ([]model.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}

	var f file
	if isJSON(path) {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}

	if err := Validate(f.Cards); err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return f.Cards, nil
}

// Validate checks that every card is persisted, has text and a unique id
func Validate(cards []model.Card) error {
	seen := make(map[int64]bool, len(cards))
	for i, c := range cards {
		if c.ID <= 0 {
			return fmt.Errorf("card %d: id must be positive, got %d", i, c.ID)
		}
		if c.Temporary {
			return fmt.Errorf("card %d (%d): temporary cards cannot be stored", i, c.ID)
		}
		if strings.TrimSpace(c.Text) == "" {
			return fmt.Errorf("card %d (%d): text is required", i, c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("card %d: duplicate id %d", i, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// marshal encodes cards in the format implied by path
func marshal(path string, cards []model.Card) ([]byte, error) {
	f := file{Cards: cards}
	if isJSON(path) {
		return json.MarshalIndent(f, "", "  ")
	}
	return yaml.Marshal(f)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
