package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contextboard/internal/pipeline"
)

var (
	vocabPath        string
	outJSON          string
	interpretTimeout time.Duration
)

// interpretCmd represents the interpret command
var interpretCmd = &cobra.Command{
	Use:   "interpret <phrase>",
	Short: "Interpret one phrase and print its context board",
	Long: `Interpret runs a phrase through the catalog, the optional language model
and the keyword fallback, then builds a context board from your vocabulary.

Example:
  contextboard interpret "buy one get one free"
  contextboard interpret "Take a number" --vocab ~/.contextboard/vocab.yaml
  contextboard interpret "2 for 1 on all drinks" --json board.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInterpret,
}

func init() {
	rootCmd.AddCommand(interpretCmd)

	interpretCmd.Flags().StringVar(&vocabPath, "vocab", "", "vocabulary file (YAML or JSON)")
	interpretCmd.Flags().StringVar(&outJSON, "json", "", "write the board result as JSON to this path")
	interpretCmd.Flags().DurationVar(&interpretTimeout, "timeout", 30*time.Second, "overall interpretation timeout")
}

func runInterpret(cmd *cobra.Command, args []string) error {
	phrase := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), interpretTimeout)
	defer cancel()

	vocabulary, err := loadVocabulary(vocabPath)
	if err != nil {
		return err
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	result := p.Interpret(ctx, phrase, vocabulary)
	pipeline.RenderText(cmd.OutOrStdout(), result)

	if outJSON != "" {
		if err := pipeline.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if !result.Success {
		return fmt.Errorf("interpretation failed: %s", result.Error)
	}
	return nil
}
