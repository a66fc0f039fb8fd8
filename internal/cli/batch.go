package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contextboard/internal/pipeline"
	"github.com/ppiankov/contextboard/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchVocab   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Interpret multiple phrases from a file in parallel",
	Long: `Batch interprets phrases concurrently:
- Read phrases from input file (one per line, # for comments)
- Process phrases in parallel with configurable worker count
- Optionally write one board JSON per phrase

Example:
  contextboard batch phrases.txt
  contextboard batch phrases.txt --concurrency 8 --output-dir ./boards`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "write one board JSON per phrase into this directory")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchVocab, "vocab", "", "vocabulary file (YAML or JSON)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	workers := concurrency
	if workers <= 0 {
		workers = appConfig.Concurrency.Workers
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Contextboard Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", workers)
	if outputDir != "" {
		fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	}
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	vocabulary, err := loadVocabulary(batchVocab)
	if err != nil {
		return err
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, workers)
	results, err := processor.ProcessFile(ctx, file, vocabulary)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	out := cmd.OutOrStdout()
	successCount := 0
	failureCount := 0

	for _, r := range results {
		if err := r.GetError(); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %q: %v\n", r.Phrase, err)
			continue
		}
		successCount++

		if outputDir != "" {
			path := filepath.Join(outputDir, boardFileName(r.Index, r.Phrase))
			if err := pipeline.RenderJSON(r.Result, path); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %q: failed to write JSON: %v\n", r.Phrase, err)
				continue
			}
		}

		fmt.Fprintf(out, "✓ %q → %s, %d cards (%s %.2f)\n",
			r.Phrase, r.Result.Board.Name, len(r.Result.Board.Cards),
			r.Result.Source, r.Result.Board.Interpretation.Confidence)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d phrases\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
