package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/core/services"
)

var watchOp string

var watchCmd = &cobra.Command{
	Use:   "watch [corpus]",
	Short: "Re-run an analysis whenever the corpus changes",
	Long: `Watches the corpus file and re-runs the chosen operation after each
save: check (default), pairs, or variants. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchOp, "op", "check", "operation to re-run: check, pairs, or variants")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := resolveCorpus(args)
	if err != nil {
		return err
	}

	var run func() error
	switch watchOp {
	case "check":
		run = func() error { return runCheck(cmd, []string{path}) }
	case "pairs":
		run = func() error { return runPairs(cmd, []string{path}) }
	case "variants":
		run = func() error { return runVariants(cmd, []string{path}) }
	default:
		return fmt.Errorf("unknown watch operation %q", watchOp)
	}

	// Initial run before waiting for changes.
	if err := run(); err != nil {
		return err
	}

	watcher := services.NewWatcher(path, func(context.Context) error {
		if err := run(); err != nil {
			// Keep watching through transient analysis errors.
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
		return nil
	})

	err = watcher.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
