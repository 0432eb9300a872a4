// Package tui provides the interactive corpus browser.
//
// The browser is a single-view Bubbletea application: a query input at
// the top, a navigable result list below it, and a detail pane showing
// the verbatim block of the selected record.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glosskit/glosskit-cli/internal/adapters/driving/tui/styles"
	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// corpusLoadedMsg carries the result of the initial corpus load.
type corpusLoadedMsg struct {
	corpus      *domain.Corpus
	diagnostics []domain.Diagnostic
	err         error
}

// searchDoneMsg carries the result of a search.
type searchDoneMsg struct {
	matches []domain.Record
	err     error
}

// App is the corpus browser application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// input is the query text input.
	input textinput.Model

	// field is the searched line: gloss or morpheme.
	field domain.SearchField

	// corpus is the loaded corpus, nil until the load completes.
	corpus *domain.Corpus

	// diagnostics are the parse diagnostics of the loaded corpus.
	diagnostics []domain.Diagnostic

	// results holds the records currently listed. Before the first
	// search this is the whole corpus.
	results []domain.Record

	// selected is the index of the highlighted result.
	selected int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new browser application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a token..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
		input:  ti,
		field:  domain.FieldGloss,
		width:  80,
		height: 24,
	}, nil
}

// Init loads the corpus and starts the cursor blink.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadCorpus())
}

// Update handles messages and returns the updated model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case corpusLoadedMsg:
		a.corpus = msg.corpus
		a.diagnostics = msg.diagnostics
		a.err = msg.err
		if msg.corpus != nil {
			a.results = msg.corpus.Records
		}
		a.selected = 0
		return a, nil

	case searchDoneMsg:
		a.err = msg.err
		if msg.err == nil {
			a.results = msg.matches
			a.selected = 0
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKey processes keyboard input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "tab":
		if a.field == domain.FieldGloss {
			a.field = domain.FieldMorpheme
		} else {
			a.field = domain.FieldGloss
		}
		return a, a.search()

	case "enter":
		return a, a.search()

	case "up", "ctrl+p":
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case "down", "ctrl+n":
		if a.selected < len(a.results)-1 {
			a.selected++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// loadCorpus returns a command that loads and parses the corpus.
func (a *App) loadCorpus() tea.Cmd {
	return func() tea.Msg {
		corpus, diags, err := a.ports.Corpus.Load(a.ctx, a.ports.CorpusPath)
		return corpusLoadedMsg{corpus: corpus, diagnostics: diags, err: err}
	}
}

// search returns a command that runs the current query against the
// selected field. An empty query lists the whole corpus again.
func (a *App) search() tea.Cmd {
	target := strings.TrimSpace(a.input.Value())
	corpus := a.corpus
	field := a.field

	return func() tea.Msg {
		if corpus == nil {
			return searchDoneMsg{err: ErrMissingCorpusPath}
		}
		if target == "" {
			return searchDoneMsg{matches: corpus.Records}
		}

		var matches []domain.Record
		var err error
		if field == domain.FieldMorpheme {
			matches, err = a.ports.Search.ByMorpheme(context.Background(), corpus, target)
		} else {
			matches, err = a.ports.Search.ByGloss(context.Background(), corpus, target)
		}
		return searchDoneMsg{matches: matches, err: err}
	}
}

// View renders the browser.
func (a *App) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Glosskit — %s", a.ports.CorpusPath)
	b.WriteString(a.styles.Title.Render(title))
	b.WriteString("\n\n")

	label := a.styles.Subtitle.Render(fmt.Sprintf("%s: ", a.field))
	b.WriteString(label)
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(a.renderResults())
	b.WriteString("\n")
	b.WriteString(a.renderDetail())
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter search · tab switch field · ↑/↓ select · esc quit"))

	return b.String()
}

// renderResults renders the navigable result list.
func (a *App) renderResults() string {
	if a.corpus == nil {
		return a.styles.Muted.Render("Loading corpus...")
	}
	if len(a.results) == 0 {
		return a.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(a.results)+2)
	header := a.styles.Subtitle.Render(fmt.Sprintf("Records (%d)", len(a.results)))
	lines = append(lines, header, "")

	visible := a.visibleCount()
	start := 0
	if a.selected >= visible {
		start = a.selected - visible + 1
	}
	end := start + visible
	if end > len(a.results) {
		end = len(a.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, a.renderResult(i, &a.results[i]))
	}

	return strings.Join(lines, "\n")
}

// visibleCount is how many result rows fit between the input and the
// detail pane.
func (a *App) visibleCount() int {
	visible := (a.height - 14)
	if visible < 3 {
		visible = 3
	}
	return visible
}

// renderResult formats a single result row.
func (a *App) renderResult(index int, rec *domain.Record) string {
	label := rec.Ref
	if label == "" {
		label = rec.ID
	}

	summary := rec.Text
	if summary == "" {
		summary = rec.Morphemes
	}
	row := fmt.Sprintf("  %-12s %s", label, summary)
	if max := a.width - 4; max > 16 && len(row) > max {
		row = row[:max-3] + "..."
	}

	if index == a.selected {
		return a.styles.Selected.Render(">" + row[1:])
	}
	return a.styles.Normal.Render(row)
}

// renderDetail renders the verbatim block of the selected record.
func (a *App) renderDetail() string {
	if a.selected >= len(a.results) {
		return ""
	}
	rec := &a.results[a.selected]
	return a.styles.Detail.Render(strings.Join(rec.RawLines, "\n"))
}

// Run starts the browser and blocks until it exits.
func Run(ports *Ports) error {
	app, err := NewApp(ports)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
