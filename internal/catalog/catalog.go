// Package catalog holds the static table of promotional phrase patterns and
// the concepts each one stands for.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/ppiankov/contextboard/internal/model"
	"gopkg.in/yaml.v3"
)

// Catalog is an ordered, read-only list of promotion mappings.
// Iteration order breaks ties in the matcher and must stay stable.
type Catalog struct {
	entries []model.PromotionMapping
}

// New builds a catalog from mappings, validating every entry
func New(entries []model.PromotionMapping) (*Catalog, error) {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, e.ID, err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
	}

	return &Catalog{entries: cloneAll(entries)}, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// file is the on-disk schema of a catalog override
type file struct {
	Promotions []model.PromotionMapping `yaml:"promotions"`
}

// Load reads a YAML catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Promotions) == 0 {
		return nil, fmt.Errorf("catalog %s has no promotions", path)
	}

	return New(f.Promotions)
}

// LoadOrDefault loads path when set, otherwise returns the built-in catalog
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Entries returns a copy of the mappings in catalog order; the catalog
// itself never changes after New
func (c *Catalog) Entries() []model.PromotionMapping {
	return cloneAll(c.entries)
}

// Len returns the number of mappings
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get looks up a mapping by id
func (c *Catalog) Get(id string) (model.PromotionMapping, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return clone(e), true
		}
	}
	return model.PromotionMapping{}, false
}

// ByPriority returns a copy of the entries sorted by descending priority,
// keeping catalog order among equal priorities. Used for listings only.
func (c *Catalog) ByPriority() []model.PromotionMapping {
	sorted := cloneAll(c.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

// Marshal renders the catalog in the override file format
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(file{Promotions: c.entries})
}

func cloneAll(entries []model.PromotionMapping) []model.PromotionMapping {
	out := make([]model.PromotionMapping, len(entries))
	for i, e := range entries {
		out[i] = clone(e)
	}
	return out
}

func clone(e model.PromotionMapping) model.PromotionMapping {
	e.Patterns = append([]string(nil), e.Patterns...)
	e.Concepts = append([]model.Concept(nil), e.Concepts...)
	e.VisualHints.Emphasis = append([]model.ConceptType(nil), e.VisualHints.Emphasis...)
	return e
}
