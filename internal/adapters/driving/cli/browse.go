package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [corpus]",
	Short: "Browse a corpus interactively",
	Long: `Launch the interactive terminal browser for a WRIML corpus.

The browser shows every record of the corpus with a live token search
over the gloss or morpheme line.

Controls:
  Enter    - Search
  Tab      - Switch between gloss and morpheme search
  ↑/↓      - Navigate records
  Esc      - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Panic recovery to get stack traces out of the alternate screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	path, err := resolveCorpus(args)
	if err != nil {
		return err
	}

	return tui.Run(&tui.Ports{
		Corpus:     corpusService,
		Search:     searchService,
		CorpusPath: path,
	})
}
