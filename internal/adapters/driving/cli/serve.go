package cli

import (
	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [corpus]",
	Short: "Serve corpus search and grouping as a JSON API",
	Long: `Starts a read-only HTTP JSON API over the corpus. The optional
positional corpus becomes the default for requests that omit the
'corpus' query parameter. Each request re-reads the file, so edits
show up without a restart.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	server := httpapi.NewServer(corpusService, groupingService, searchService)
	if path, err := resolveCorpus(args); err == nil {
		server.DefaultCorpus = path
	}
	return server.Run(cmd.Context(), serveAddr)
}
