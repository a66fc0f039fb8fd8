package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/contextboard/internal/model"
	"github.com/ppiankov/contextboard/internal/pipeline"
	"github.com/ppiankov/contextboard/internal/vocab"
)

// buildPipeline creates the pipeline from the resolved configuration
func buildPipeline() (*pipeline.Pipeline, error) {
	p, err := pipeline.NewFromConfig(appConfig, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("pipeline ready",
		zap.Bool("external", p.ExternalEnabled()),
		zap.String("provider", appConfig.LLM.Provider))
	return p, nil
}

// loadVocabulary reads the vocabulary file; an empty path is an empty vocabulary
func loadVocabulary(path string) ([]model.Card, error) {
	if path == "" {
		return nil, nil
	}
	cards, err := vocab.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded vocabulary", zap.String("path", path), zap.Int("cards", len(cards)))
	return cards, nil
}

// sanitizeFilename sanitizes a string for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(strings.ToLower(strings.TrimSpace(s)))
	s = filepath.Clean(s)

	// Limit length
	if r := []rune(s); len(r) > 100 {
		s = string(r[:100])
	}
	if s == "" || s == "." {
		s = "phrase"
	}

	return s
}

// boardFileName names the JSON file for the i-th phrase of a batch
func boardFileName(i int, phrase string) string {
	return fmt.Sprintf("%03d-%s.json", i+1, sanitizeFilename(phrase))
}
