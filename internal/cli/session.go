package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contextboard/internal/model"
	"github.com/ppiankov/contextboard/internal/pipeline"
	"github.com/ppiankov/contextboard/internal/session"
)

var (
	sessionID    string
	sessionVocab string
	sessionJSON  string
)

// sessionCmd represents the interactive session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive loop: each phrase replaces the current board",
	Long: `Session reads phrases from stdin, one per line. Each successful phrase
replaces the current board. Commands:

  :show    print the current board
  :clear   destroy the current board
  :save    write the current board as JSON (see --json)
  :quit    exit

Example:
  contextboard session --vocab vocab.yaml --json current-board.json`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringVar(&sessionID, "id", "default", "session identifier")
	sessionCmd.Flags().StringVar(&sessionVocab, "vocab", "", "vocabulary file (YAML or JSON)")
	sessionCmd.Flags().StringVar(&sessionJSON, "json", "board.json", "path used by :save")
}

func runSession(cmd *cobra.Command, args []string) error {
	vocabulary, err := loadVocabulary(sessionVocab)
	if err != nil {
		return err
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	store := session.NewStore(appConfig.Session.TTL)
	return runSessionLoop(cmd.Context(), p, store, sessionID, sessionJSON, vocabulary, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runSessionLoop drives one session until EOF or :quit
func runSessionLoop(ctx context.Context, p *pipeline.Pipeline, store *session.Store, id, jsonPath string, vocabulary []model.Card, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
		case ":quit", ":q":
			return nil
		case ":clear":
			store.Clear(id)
			fmt.Fprintln(out, "Board cleared.")
		case ":show":
			if b, ok := store.Current(id); ok {
				pipeline.RenderBoard(out, b)
			} else {
				fmt.Fprintln(out, "No current board.")
			}
		case ":save":
			b, ok := store.Current(id)
			if !ok {
				fmt.Fprintln(out, "No current board.")
				break
			}
			if err := pipeline.RenderJSON(b, jsonPath); err != nil {
				fmt.Fprintf(out, "✗ %v\n", err)
				break
			}
			fmt.Fprintf(out, "✓ Wrote %s\n", jsonPath)
		default:
			result, _ := p.InterpretSession(ctx, store, id, line, vocabulary)
			pipeline.RenderText(out, result)
		}
		fmt.Fprint(out, "> ")
	}

	return scanner.Err()
}
