package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/contextboard/internal/pipeline"
	"github.com/ppiankov/contextboard/internal/vocab"
)

var (
	promoteVocab string
	promoteCard  int64
)

// promoteCmd represents the promote command
var promoteCmd = &cobra.Command{
	Use:   "promote <board.json> --card <id>",
	Short: "Save a temporary card from a board into the vocabulary",
	Long: `Promote copies a temporary card from a saved board into the vocabulary
file as a permanent card. Temporary fields are dropped and the card gets the
next free id.

Temporary card ids are negative, so pass them with --card, or after "--"
as a positional argument.

Example:
  contextboard interpret "buy one get one free" --json board.json
  contextboard promote board.json --card -1 --vocab vocab.yaml
  contextboard promote --vocab vocab.yaml -- board.json -2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPromote,
}

func init() {
	rootCmd.AddCommand(promoteCmd)

	promoteCmd.Flags().StringVar(&promoteVocab, "vocab", "", "vocabulary file to append to (required)")
	promoteCmd.Flags().Int64Var(&promoteCard, "card", 0, "id of the temporary card to promote, e.g. -1")
	_ = promoteCmd.MarkFlagRequired("vocab")
}

// promoteCardID resolves the card id from --card or the second positional argument
func promoteCardID(cmd *cobra.Command, args []string) (int64, error) {
	fromFlag := cmd.Flags().Changed("card")
	switch {
	case fromFlag && len(args) == 2:
		return 0, fmt.Errorf("card id given twice: --card %d and %q", promoteCard, args[1])
	case fromFlag:
		return promoteCard, nil
	case len(args) == 2:
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid card id %q: %w", args[1], err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("missing card id: use --card <id>")
	}
}

func runPromote(cmd *cobra.Command, args []string) error {
	id, err := promoteCardID(cmd, args)
	if err != nil {
		return err
	}

	b, err := pipeline.ReadBoard(args[0])
	if err != nil {
		return err
	}

	card, ok := b.FindCard(id)
	if !ok {
		return fmt.Errorf("board %s has no card with id %d", b.ID, id)
	}

	promoted, err := vocab.NewFileStore(promoteVocab).Promote(card)
	if err != nil {
		return fmt.Errorf("promote card %d: %w", id, err)
	}

	logger.Info("promoted card",
		zap.String("board", b.ID),
		zap.Int64("from", id),
		zap.Int64("to", promoted.ID),
		zap.String("vocab", promoteVocab))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %q as card %d in %s\n", promoted.Text, promoted.ID, promoteVocab)
	return nil
}
