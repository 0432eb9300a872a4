package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

var (
	pairsJSON   bool
	pairsExport string
	pairsOut    string
)

var pairsCmd = &cobra.Command{
	Use:   "pairs [corpus]",
	Short: "Cluster near-identical examples into minimal pairs",
	Long: `Clusters records whose gloss token sets differ from a group seed's by
exactly one token. Membership is decided against the seed only, so two
members of a group need not be minimal pairs of each other.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPairs,
}

func init() {
	pairsCmd.Flags().BoolVar(&pairsJSON, "json", false, "output groups as JSON")
	pairsCmd.Flags().StringVar(&pairsExport, "export", "", "export format (passthrough, plain, tabular, latex)")
	pairsCmd.Flags().StringVar(&pairsOut, "out", "", "directory for the export artifact")
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	path, err := resolveCorpus(args)
	if err != nil {
		return err
	}

	corpus, diags, err := corpusService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	printDiagnostics(cmd, diags)

	groups, err := groupingService.MinimalPairs(cmd.Context(), corpus)
	if err != nil {
		return fmt.Errorf("clustering failed: %w", err)
	}

	format, err := resolveFormat(pairsExport)
	if err != nil {
		return err
	}
	if format != domain.FormatNone {
		out := artifactPath(path, "_pairs", format, pairsOut)
		if err := writePairGroupsArtifact(cmd, format, groups, out); err != nil {
			return err
		}
	}

	if pairsJSON {
		data, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal groups: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%d records in %d minimal-pair groups\n", corpus.Len(), len(groups))
	for gi := range groups {
		cmd.Printf("\nGroup %d:\n", gi+1)
		printRecords(cmd, groups[gi].Members)
	}
	return nil
}
