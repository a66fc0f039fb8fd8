package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contextboard/internal/catalog"
	"github.com/ppiankov/contextboard/internal/model"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the promotion catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List promotion patterns and their concepts",
	Long:  `List every catalog entry by descending priority, with its patterns and concepts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadOrDefault(appConfig.Catalog.Path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range cat.ByPriority() {
			printEntry(out, e)
		}
		fmt.Fprintf(out, "\n%d entries\n", cat.Len())
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadOrDefault(appConfig.Catalog.Path)
		if err != nil {
			return err
		}
		e, ok := cat.Get(args[0])
		if !ok {
			return fmt.Errorf("no catalog entry %q", args[0])
		}

		out := cmd.OutOrStdout()
		printEntry(out, e)
		if e.VisualHints.Layout != "" {
			fmt.Fprintf(out, "  layout:   %s\n", e.VisualHints.Layout)
		}
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the catalog as an editable override file",
	Long: `Print the active catalog in the override file format. Save it, edit it and
point catalog.path at it to customize matching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadOrDefault(appConfig.Catalog.Path)
		if err != nil {
			return err
		}
		data, err := cat.Marshal()
		if err != nil {
			return fmt.Errorf("error marshaling catalog: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}

func printEntry(out io.Writer, e model.PromotionMapping) {
	concepts := make([]string, len(e.Concepts))
	for i, c := range e.Concepts {
		concepts[i] = c.String()
	}
	fmt.Fprintf(out, "%-18s (priority %d)\n", e.ID, e.Priority)
	fmt.Fprintf(out, "  patterns: %s\n", strings.Join(e.Patterns, " | "))
	fmt.Fprintf(out, "  concepts: %s\n", strings.Join(concepts, ", "))
}
