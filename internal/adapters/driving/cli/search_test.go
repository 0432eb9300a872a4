package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

func TestSearchCommand(t *testing.T) {
	_, path := setupCLI(t)

	out, _, err := runCLI(t, "search", "3SG", path, "--field", "gloss")

	require.NoError(t, err)
	assert.Contains(t, out, `1 of 2 records contain gloss token "3SG"`)
	assert.Contains(t, out, "[ex2]")
	assert.NotContains(t, out, "[ex1]")
}

func TestSearchCommandByMorpheme(t *testing.T) {
	_, path := setupCLI(t)

	out, _, err := runCLI(t, "search", "speak", path, "--field", "morpheme")

	require.NoError(t, err)
	assert.Contains(t, out, `2 of 2 records contain morpheme token "speak"`)
}

func TestSearchCommandNoMatches(t *testing.T) {
	_, path := setupCLI(t)

	out, _, err := runCLI(t, "search", "PST", path, "--field", "gloss")

	require.NoError(t, err, "an empty result is a valid outcome")
	assert.Contains(t, out, "0 of 2 records")
	assert.Contains(t, out, "No matching records.")
}

func TestSearchCommandInvalidField(t *testing.T) {
	_, path := setupCLI(t)

	_, _, err := runCLI(t, "search", "say", path, "--field", "translation")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchCommandJSON(t *testing.T) {
	_, path := setupCLI(t)

	out, _, err := runCLI(t, "search", "say", path, "--field", "gloss", "--json")

	require.NoError(t, err)
	var results []domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 2)
}

func TestSearchCommandExportArtifact(t *testing.T) {
	setupCLI(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.wriml")
	require.NoError(t, os.WriteFile(path, []byte(cliCorpus), 0o644))

	searchJSON = false
	_, _, err := runCLI(t, "search", "3SG", path, "--field", "gloss", "--export", "plain")
	require.NoError(t, err)

	artifact := filepath.Join(dir, "corpus_gloss_3SG.txt")
	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[ex2]")

	// Reset for later executions.
	searchExport = ""
}

func TestPairsCommand(t *testing.T) {
	_, path := setupCLI(t)

	out, _, err := runCLI(t, "pairs", path)

	require.NoError(t, err)
	// "1SG say" vs "3SG say" is a substitution, so each record seeds its
	// own group.
	assert.Contains(t, out, "2 records in 2 minimal-pair groups")
	assert.Contains(t, out, "Group 2:")
}

func TestVariantsCommand(t *testing.T) {
	_, path := setupCLI(t)

	out, _, err := runCLI(t, "variants", path)

	require.NoError(t, err)
	assert.Contains(t, out, "2 records in 2 gloss-identity classes")
	assert.Contains(t, out, `Class 1 "1SG say":`)
}
