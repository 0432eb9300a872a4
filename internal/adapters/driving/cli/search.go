package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

var (
	searchField  string
	searchJSON   bool
	searchExport string
	searchOut    string
)

var searchCmd = &cobra.Command{
	Use:   "search [target] [corpus]",
	Short: "Find examples containing a gloss or morpheme token",
	Long: `Keeps every record whose tokenised gloss (or morpheme) line contains
the target as an exact, case-sensitive token. An empty result is a
valid outcome, not an error.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchField, "field", "f", "gloss", "line to search: gloss or morpheme")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchExport, "export", "", "export format (passthrough, plain, tabular, latex)")
	searchCmd.Flags().StringVar(&searchOut, "out", "", "directory for the export artifact")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	target := args[0]

	field := domain.SearchField(searchField)
	if !field.IsValid() {
		return fmt.Errorf("field %q: %w", searchField, domain.ErrInvalidInput)
	}

	path, err := resolveCorpus(args[1:])
	if err != nil {
		return err
	}

	corpus, diags, err := corpusService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	printDiagnostics(cmd, diags)

	var results []domain.Record
	switch field {
	case domain.FieldMorpheme:
		results, err = searchService.ByMorpheme(cmd.Context(), corpus, target)
	default:
		results, err = searchService.ByGloss(cmd.Context(), corpus, target)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	format, err := resolveFormat(searchExport)
	if err != nil {
		return err
	}
	if format != domain.FormatNone {
		suffix := fmt.Sprintf("_%s_%s", field, target)
		out := artifactPath(path, suffix, format, searchOut)
		if err := writeRecordsArtifact(cmd, format, results, out); err != nil {
			return err
		}
	}

	if searchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%d of %d records contain %s token %q\n", len(results), corpus.Len(), field, target)
	printRecords(cmd, results)
	return nil
}
