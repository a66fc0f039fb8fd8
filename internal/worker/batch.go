package worker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/contextboard/internal/model"
)

// Interpreter turns one phrase into a board result
type Interpreter interface {
	Interpret(ctx context.Context, phrase string, vocabulary []model.Card) model.BoardResult
}

// PhraseJob represents one phrase interpretation job
type PhraseJob struct {
	Index       int
	Phrase      string
	Vocabulary  []model.Card
	Interpreter Interpreter
}

// Execute executes the interpretation job
func (j *PhraseJob) Execute(ctx context.Context) Result {
	return &PhraseResult{
		Index:  j.Index,
		Phrase: j.Phrase,
		Result: j.Interpreter.Interpret(ctx, j.Phrase, j.Vocabulary),
	}
}

// PhraseResult represents the result of a phrase job
type PhraseResult struct {
	Index  int
	Phrase string
	Result model.BoardResult
}

// GetError returns the interpretation failure, if any
func (r *PhraseResult) GetError() error {
	if r.Result.Success {
		return nil
	}
	return errors.New(r.Result.Error)
}

// BatchProcessor interprets multiple phrases concurrently
type BatchProcessor struct {
	interpreter Interpreter
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(interpreter Interpreter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		interpreter: interpreter,
		concurrency: concurrency,
	}
}

// ProcessPhrases interprets phrases concurrently and returns results in
// input order. Phrases not started before ctx is cancelled are omitted.
func (b *BatchProcessor) ProcessPhrases(ctx context.Context, phrases []string, vocabulary []model.Card) []*PhraseResult {
	if len(phrases) == 0 {
		return []*PhraseResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, phrase := range phrases {
		job := &PhraseJob{
			Index:       i,
			Phrase:      phrase,
			Vocabulary:  vocabulary,
			Interpreter: b.interpreter,
		}
		if !pool.Submit(job) {
			break
		}
	}

	results := pool.Wait()

	phraseResults := make([]*PhraseResult, len(results))
	for i, result := range results {
		phraseResults[i] = result.(*PhraseResult)
	}
	sort.Slice(phraseResults, func(i, j int) bool {
		return phraseResults[i].Index < phraseResults[j].Index
	})

	return phraseResults
}

// ProcessFile reads phrases from a file and interprets them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string, vocabulary []model.Card) ([]*PhraseResult, error) {
	phrases, err := ReadPhrasesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read phrases: %w", err)
	}

	return b.ProcessPhrases(ctx, phrases, vocabulary), nil
}

// ReadPhrasesFromFile reads phrases from a file (one per line)
func ReadPhrasesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var phrases []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate phrases
		if !seen[line] {
			seen[line] = true
			phrases = append(phrases, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return phrases, nil
}
