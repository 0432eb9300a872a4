// Package cli implements the glosskit command line interface.
// Commands are thin driving adapters: they resolve flags and config,
// call the core services, and print or export the results. No command
// ever prompts; the stored defaults plus flags decide everything.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/glosskit/glosskit-cli/internal/adapters/driven/config/file"
	"github.com/glosskit/glosskit-cli/internal/adapters/driven/export"
	sourcefile "github.com/glosskit/glosskit-cli/internal/adapters/driven/source/file"
	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
	"github.com/glosskit/glosskit-cli/internal/core/services"
	"github.com/glosskit/glosskit-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Core services, injectable for tests.
var (
	corpusService   driving.CorpusService
	groupingService driving.GroupingService
	searchService   driving.SearchService
	exportService   driving.ExportService
	configStore     driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "glosskit",
	Short: "Parse and analyse WRIML interlinear example corpora",
	Long: `Glosskit ingests a plain-text corpus of linguistic examples in WRIML
markup, parses each example into a structured record, and runs set-based
grouping and lookup over the records: minimal-pair clustering, context
variant (gloss identity) clustering, and gloss/morpheme token search.
Results render as WRIML, plain text, a tabular block, or LaTeX.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose diagnostics on stderr")
}

// initServices wires the default adapters. Services already set (by
// tests) are kept.
func initServices() error {
	if configStore == nil {
		store, err := configfile.NewConfigStore(os.Getenv("GLOSSKIT_CONFIG_DIR"))
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		configStore = store
	}
	if corpusService == nil {
		corpusService = services.NewCorpusService(sourcefile.New())
	}
	if groupingService == nil {
		groupingService = services.NewGroupingService()
	}
	if searchService == nil {
		searchService = services.NewSearchService()
	}
	if exportService == nil {
		exportService = services.NewExportService(
			export.NewPassthrough(),
			export.NewPlain(),
			export.NewTabular(),
			export.NewLaTeX(),
		)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveCorpus picks the corpus path: the positional argument when
// given, otherwise the configured default.
func resolveCorpus(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if path := configStore.GetString(configfile.KeyDefaultCorpus); path != "" {
		return path, nil
	}
	return "", errors.New("no corpus given and no corpus.default configured")
}

// resolveFormat picks the export format: the --export flag when set,
// otherwise the configured default, otherwise none.
func resolveFormat(flagVal string) (domain.ExportFormat, error) {
	if flagVal == "" {
		flagVal = configStore.GetString(configfile.KeyExportFormat)
	}
	if flagVal == "" {
		return domain.FormatNone, nil
	}
	return domain.ParseExportFormat(flagVal)
}

// artifactPath derives the output artifact location from the corpus
// path, the operation suffix, and the format; --out or export.dir
// relocate it.
func artifactPath(corpusPath, suffix string, format domain.ExportFormat, outDir string) string {
	path := exportService.OutputPath(corpusPath, suffix, format)
	if outDir == "" {
		outDir = configStore.GetString(configfile.KeyExportDir)
	}
	if outDir != "" {
		path = filepath.Join(outDir, filepath.Base(path))
	}
	return path
}

// printDiagnostics reports tolerated parse problems on stderr.
func printDiagnostics(cmd *cobra.Command, diags []domain.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d)
	}
}

// printRecords writes a short human listing of records.
func printRecords(cmd *cobra.Command, records []domain.Record) {
	if len(records) == 0 {
		cmd.Println("No matching records.")
		return
	}
	for i := range records {
		rec := &records[i]
		label := rec.Ref
		if label == "" {
			label = rec.ID
		}
		cmd.Printf("  [%s] %s\n", label, rec.Morphemes)
		if rec.Gloss != "" {
			cmd.Printf("      %s\n", rec.Gloss)
		}
		if rec.Translation != "" {
			cmd.Printf("      '%s'\n", rec.Translation)
		}
	}
}
