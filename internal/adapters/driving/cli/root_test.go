package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/glosskit/glosskit-cli/internal/adapters/driven/config/file"
	"github.com/glosskit/glosskit-cli/internal/adapters/driven/export"
	sourcefile "github.com/glosskit/glosskit-cli/internal/adapters/driven/source/file"
	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
	"github.com/glosskit/glosskit-cli/internal/core/services"
)

// mockConfigStore implements driven.ConfigStore without touching disk.
type mockConfigStore struct {
	data map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	v, ok := m.data[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "mock/config.toml" }

var _ driven.ConfigStore = (*mockConfigStore)(nil)

const cliCorpus = "^ex\n^id ex1 _id\n^mb I speak _mb\n^gl 1SG say _gl\n_ex\n" +
	"^ex\n^id ex2 _id\n^mb she speak-s _mb\n^gl 3SG say _gl\n_ex\n"

// setupCLI injects real services over a temp corpus and a mock config
// store, and restores the package state afterwards.
func setupCLI(t *testing.T) (*mockConfigStore, string) {
	t.Helper()

	store := newMockConfigStore()
	configStore = store
	corpusService = services.NewCorpusService(sourcefile.New())
	groupingService = services.NewGroupingService()
	searchService = services.NewSearchService()
	exportService = services.NewExportService(
		export.NewPassthrough(),
		export.NewPlain(),
		export.NewTabularWithWidth(0),
		export.NewLaTeX(),
	)

	t.Cleanup(func() {
		configStore = nil
		corpusService = nil
		groupingService = nil
		searchService = nil
		exportService = nil
		rootCmd.SetArgs(nil)
	})

	path := filepath.Join(t.TempDir(), "corpus.wriml")
	require.NoError(t, os.WriteFile(path, []byte(cliCorpus), 0o644))
	return store, path
}

// runCLI executes the root command with args and captured output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestResolveCorpus(t *testing.T) {
	store, _ := setupCLI(t)

	// Positional argument wins.
	got, err := resolveCorpus([]string{"explicit.wriml"})
	require.NoError(t, err)
	assert.Equal(t, "explicit.wriml", got)

	// No argument and no default is an error.
	_, err = resolveCorpus(nil)
	assert.Error(t, err)

	// The configured default fills in.
	require.NoError(t, store.Set(configfile.KeyDefaultCorpus, "default.wriml"))
	got, err = resolveCorpus(nil)
	require.NoError(t, err)
	assert.Equal(t, "default.wriml", got)
}

func TestResolveFormat(t *testing.T) {
	store, _ := setupCLI(t)

	// Unset everywhere means no export.
	got, err := resolveFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatNone, got)

	// The flag wins over config.
	require.NoError(t, store.Set(configfile.KeyExportFormat, "plain"))
	got, err = resolveFormat("latex")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatLaTeX, got)

	// Config fills in for an empty flag.
	got, err = resolveFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatPlain, got)

	// Unknown names are rejected.
	_, err = resolveFormat("markdown")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestArtifactPath(t *testing.T) {
	store, _ := setupCLI(t)

	// Next to the input by default.
	got := artifactPath("data/corpus.wriml", "_pairs", domain.FormatLaTeX, "")
	assert.Equal(t, filepath.Join("data", "corpus_pairs.tex"), got)

	// --out relocates the artifact.
	got = artifactPath("data/corpus.wriml", "_pairs", domain.FormatLaTeX, "artifacts")
	assert.Equal(t, filepath.Join("artifacts", "corpus_pairs.tex"), got)

	// export.dir relocates when no --out is given.
	require.NoError(t, store.Set(configfile.KeyExportDir, "exports"))
	got = artifactPath("data/corpus.wriml", "", domain.FormatPlain, "")
	assert.Equal(t, filepath.Join("exports", "corpus.txt"), got)
}

func TestCheckCommand(t *testing.T) {
	_, path := setupCLI(t)

	out, errOut, err := runCLI(t, "check", path)

	require.NoError(t, err)
	assert.Contains(t, out, "2 records, 0 diagnostics")
	assert.Empty(t, errOut)
}

func TestCheckCommandReportsDiagnostics(t *testing.T) {
	setupCLI(t)

	path := filepath.Join(t.TempDir(), "partial.wriml")
	require.NoError(t, os.WriteFile(path, []byte("^ex\n^tx incomplete _tx\n_ex\n"), 0o644))

	out, errOut, err := runCLI(t, "check", path)

	require.NoError(t, err, "diagnostics do not fail the command")
	assert.Contains(t, out, "1 records, 1 diagnostics")
	assert.Contains(t, errOut, "warning: missing_field")
}

func TestCheckCommandMissingCorpus(t *testing.T) {
	setupCLI(t)

	_, _, err := runCLI(t, "check", filepath.Join(t.TempDir(), "absent.wriml"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckCommandUsesDefaultCorpus(t *testing.T) {
	store, path := setupCLI(t)
	require.NoError(t, store.Set(configfile.KeyDefaultCorpus, path))

	out, _, err := runCLI(t, "check")

	require.NoError(t, err)
	assert.Contains(t, out, "2 records")
}

func TestExportCommand(t *testing.T) {
	setupCLI(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.wriml")
	require.NoError(t, os.WriteFile(path, []byte(cliCorpus), 0o644))

	out, _, err := runCLI(t, "export", path, "--format", "latex")

	require.NoError(t, err)
	artifact := filepath.Join(dir, "corpus.tex")
	assert.Contains(t, out, "Wrote "+artifact)

	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\\begin{glexample}")
	assert.Contains(t, string(data), "\\exref{ex1}")
}

func TestExportCommandRequiresFormat(t *testing.T) {
	_, path := setupCLI(t)

	// Reset the flag left over from earlier executions.
	exportFormatFlag = ""

	_, _, err := runCLI(t, "export", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no export format")
}
