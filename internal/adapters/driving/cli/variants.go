package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

var (
	variantsJSON   bool
	variantsExport string
	variantsOut    string
)

var variantsCmd = &cobra.Command{
	Use:   "variants [corpus]",
	Short: "Cluster examples sharing an identical gloss line",
	Long: `Partitions records into exact equivalence classes keyed by the
whitespace-normalised gloss line. Records without a gloss line share
the empty-key class.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVariants,
}

func init() {
	variantsCmd.Flags().BoolVar(&variantsJSON, "json", false, "output classes as JSON")
	variantsCmd.Flags().StringVar(&variantsExport, "export", "", "export format (passthrough, plain, tabular, latex)")
	variantsCmd.Flags().StringVar(&variantsOut, "out", "", "directory for the export artifact")
	rootCmd.AddCommand(variantsCmd)
}

func runVariants(cmd *cobra.Command, args []string) error {
	path, err := resolveCorpus(args)
	if err != nil {
		return err
	}

	corpus, diags, err := corpusService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	printDiagnostics(cmd, diags)

	classes, err := groupingService.GlossVariants(cmd.Context(), corpus)
	if err != nil {
		return fmt.Errorf("clustering failed: %w", err)
	}

	format, err := resolveFormat(variantsExport)
	if err != nil {
		return err
	}
	if format != domain.FormatNone {
		out := artifactPath(path, "_variants", format, variantsOut)
		if err := writeGlossClassesArtifact(cmd, format, classes, out); err != nil {
			return err
		}
	}

	if variantsJSON {
		data, err := json.MarshalIndent(classes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal classes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%d records in %d gloss-identity classes\n", corpus.Len(), len(classes))
	for ci := range classes {
		key := classes[ci].Key
		if key == "" {
			key = "(no gloss)"
		}
		cmd.Printf("\nClass %d %q:\n", ci+1, key)
		printRecords(cmd, classes[ci].Members)
	}
	return nil
}
