package cli

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [corpus]",
	Short: "Parse a corpus and report diagnostics",
	Long: `Parses the corpus and prints the record count plus every tolerated
problem found: dropped malformed blocks, records missing required
fields, duplicated identifiers. Only an unreadable corpus fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolveCorpus(args)
	if err != nil {
		return err
	}

	corpus, diags, err := corpusService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}

	printDiagnostics(cmd, diags)
	cmd.Printf("%s: %d records, %d diagnostics\n", path, corpus.Len(), len(diags))
	return nil
}
