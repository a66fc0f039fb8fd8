package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/contextboard/internal/model"
)

// RenderJSON writes v as indented JSON to path
func RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ReadBoard loads a board previously written with RenderJSON. Both a bare
// board and a full BoardResult are accepted.
func ReadBoard(path string) (*model.ContextBoard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}

	var result model.BoardResult
	if err := json.Unmarshal(data, &result); err == nil && result.Board != nil {
		return result.Board, nil
	}

	var b model.ContextBoard
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse board %s: %w", path, err)
	}
	if b.ID == "" {
		return nil, fmt.Errorf("%s does not contain a board", path)
	}
	return &b, nil
}

// RenderText prints a human-readable summary of a result
func RenderText(w io.Writer, result model.BoardResult) {
	if !result.Success {
		fmt.Fprintf(w, "✗ %s (source: %s)\n", result.Error, result.Source)
		return
	}
	RenderBoard(w, result.Board)
}

// RenderBoard prints a board with its interpretation and cards
func RenderBoard(w io.Writer, b *model.ContextBoard) {
	concepts := make([]string, len(b.Interpretation.Concepts))
	for i, c := range b.Interpretation.Concepts {
		concepts[i] = c.String()
	}

	fmt.Fprintf(w, "%s\n", b.Name)
	fmt.Fprintf(w, "  Source:     %s (confidence %.2f)\n", b.Interpretation.Source, b.Interpretation.Confidence)
	fmt.Fprintf(w, "  Intent:     %s\n", b.Interpretation.Intent)
	fmt.Fprintf(w, "  Concepts:   %s\n", strings.Join(concepts, ", "))
	fmt.Fprintf(w, "  Cards (%d/%d):\n", len(b.Cards), model.MaxBoardSize)

	for _, c := range b.Cards {
		marker := ""
		if c.Temporary {
			marker = ", temporary"
		}
		fmt.Fprintf(w, "    [%3d] %s %s (%s%s)\n", c.ID, c.Symbol, c.Text, c.Category, marker)
	}
}
