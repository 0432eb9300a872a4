package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockCorpusService implements driving.CorpusService for testing.
type mockCorpusService struct {
	corpus  *domain.Corpus
	loadErr error
}

func (m *mockCorpusService) Load(_ context.Context, _ string) (*domain.Corpus, []domain.Diagnostic, error) {
	if m.loadErr != nil {
		return nil, nil, m.loadErr
	}
	return m.corpus, nil, nil
}

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	matches  []domain.Record
	gotField domain.SearchField
}

func (m *mockSearchService) ByGloss(_ context.Context, _ *domain.Corpus, _ string) ([]domain.Record, error) {
	m.gotField = domain.FieldGloss
	return m.matches, nil
}

func (m *mockSearchService) ByMorpheme(_ context.Context, _ *domain.Corpus, _ string) ([]domain.Record, error) {
	m.gotField = domain.FieldMorpheme
	return m.matches, nil
}

func testAppPorts() *Ports {
	return &Ports{
		Corpus: &mockCorpusService{corpus: &domain.Corpus{
			Records: []domain.Record{
				{Ref: "ex1", Gloss: "1SG say", RawLines: []string{"^gl 1SG say _gl"}},
				{Ref: "ex2", Gloss: "3SG say", RawLines: []string{"^gl 3SG say _gl"}},
			},
		}},
		Search:     &mockSearchService{},
		CorpusPath: "corpus.wriml",
	}
}

// --- Tests ---

func TestPortsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ports)
		wantErr error
	}{
		{name: "all set", mutate: func(_ *Ports) {}, wantErr: nil},
		{name: "missing corpus", mutate: func(p *Ports) { p.Corpus = nil }, wantErr: ErrMissingCorpusService},
		{name: "missing search", mutate: func(p *Ports) { p.Search = nil }, wantErr: ErrMissingSearchService},
		{name: "missing path", mutate: func(p *Ports) { p.CorpusPath = "" }, wantErr: ErrMissingCorpusPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testAppPorts()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testAppPorts())
	require.NoError(t, err)
	assert.Equal(t, domain.FieldGloss, app.field, "gloss search by default")
}

func TestNewAppInvalidPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingCorpusService)
}

func TestAppCorpusLoaded(t *testing.T) {
	app, err := NewApp(testAppPorts())
	require.NoError(t, err)

	msg := app.loadCorpus()()
	loaded, ok := msg.(corpusLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	model, _ := app.Update(loaded)
	app = model.(*App)

	assert.Len(t, app.results, 2, "the full corpus lists before the first search")
	assert.Equal(t, 0, app.selected)
}

func TestAppNavigation(t *testing.T) {
	app, err := NewApp(testAppPorts())
	require.NoError(t, err)
	model, _ := app.Update(app.loadCorpus()())
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	// Selection clamps at the last result.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.selected)
}

func TestAppFieldToggle(t *testing.T) {
	app, err := NewApp(testAppPorts())
	require.NoError(t, err)
	model, _ := app.Update(app.loadCorpus()())
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, domain.FieldMorpheme, app.field)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, domain.FieldGloss, app.field)
}

func TestAppSearchEmptyQueryListsAll(t *testing.T) {
	app, err := NewApp(testAppPorts())
	require.NoError(t, err)
	model, _ := app.Update(app.loadCorpus()())
	app = model.(*App)

	msg := app.search()()
	done, ok := msg.(searchDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Len(t, done.matches, 2)
}

func TestAppQuitKeys(t *testing.T) {
	app, err := NewApp(testAppPorts())
	require.NoError(t, err)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppView(t *testing.T) {
	app, err := NewApp(testAppPorts())
	require.NoError(t, err)

	view := app.View()
	assert.Contains(t, view, "corpus.wriml")
	assert.Contains(t, view, "Loading corpus...")

	model, _ := app.Update(app.loadCorpus()())
	app = model.(*App)

	view = app.View()
	assert.Contains(t, view, "Records (2)")
	assert.Contains(t, view, "ex1")
}
