package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

var (
	exportFormatFlag string
	exportOutFlag    string
)

var exportCmd = &cobra.Command{
	Use:   "export [corpus]",
	Short: "Render the whole corpus in an output format",
	Long: `Parses the corpus and writes every record in the chosen encoding.
The artifact lands next to the input (or under --out / export.dir),
named after the input plus the format extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "", "export format (passthrough, plain, tabular, latex)")
	exportCmd.Flags().StringVar(&exportOutFlag, "out", "", "directory for the export artifact")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path, err := resolveCorpus(args)
	if err != nil {
		return err
	}

	format, err := resolveFormat(exportFormatFlag)
	if err != nil {
		return err
	}
	if format == domain.FormatNone {
		return fmt.Errorf("no export format: pass --format or set export.format")
	}

	corpus, diags, err := corpusService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	printDiagnostics(cmd, diags)

	out := artifactPath(path, "", format, exportOutFlag)
	return writeRecordsArtifact(cmd, format, corpus.Records, out)
}

// The artifact writers open the derived path, run the export service,
// and report where the result landed.

func writeRecordsArtifact(cmd *cobra.Command, format domain.ExportFormat, records []domain.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := exportService.Records(cmd.Context(), format, records, f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Wrote %s (%s)\n", path, format)
	return nil
}

func writePairGroupsArtifact(cmd *cobra.Command, format domain.ExportFormat, groups []domain.PairGroup, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := exportService.PairGroups(cmd.Context(), format, groups, f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Wrote %s (%s)\n", path, format)
	return nil
}

func writeGlossClassesArtifact(cmd *cobra.Command, format domain.ExportFormat, classes []domain.GlossClass, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := exportService.GlossClasses(cmd.Context(), format, classes, f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Wrote %s (%s)\n", path, format)
	return nil
}
