// Package httpapi exposes corpus search and grouping as a read-only
// JSON REST API.
//
// Endpoints:
//
//	GET /api/records?corpus=<path>
//	GET /api/search?corpus=<path>&target=<token>[&field=gloss|morpheme]
//	GET /api/pairs?corpus=<path>
//	GET /api/variants?corpus=<path>
//
// Every request loads and parses the corpus fresh; an invocation is a
// pure function of the file contents, so concurrent requests need no
// coordination.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
	"github.com/glosskit/glosskit-cli/internal/logger"
)

// Server serves the JSON API over the core services.
type Server struct {
	corpus   driving.CorpusService
	grouping driving.GroupingService
	search   driving.SearchService

	// DefaultCorpus is used when a request omits the corpus parameter.
	DefaultCorpus string
}

// NewServer creates an API server over the given services.
func NewServer(corpus driving.CorpusService, grouping driving.GroupingService, search driving.SearchService) *Server {
	return &Server{corpus: corpus, grouping: grouping, search: search}
}

// ---- JSON response types ------------------------------------------------

type recordJSON struct {
	ID          string   `json:"id"`
	Ref         string   `json:"ref,omitempty"`
	Context     string   `json:"context,omitempty"`
	ContextType string   `json:"context_type"`
	Judgment    string   `json:"judgment,omitempty"`
	Text        string   `json:"text,omitempty"`
	Morphemes   string   `json:"morphemes,omitempty"`
	Gloss       string   `json:"gloss,omitempty"`
	Translation string   `json:"translation,omitempty"`
	Literal     string   `json:"literal,omitempty"`
	RawLines    []string `json:"raw_lines,omitempty"`
}

type diagnosticJSON struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Ref     string `json:"ref,omitempty"`
	Message string `json:"message"`
}

type recordsResponse struct {
	Corpus      string           `json:"corpus"`
	Records     []recordJSON     `json:"records"`
	Diagnostics []diagnosticJSON `json:"diagnostics,omitempty"`
}

type searchResponse struct {
	Corpus  string       `json:"corpus"`
	Field   string       `json:"field"`
	Target  string       `json:"target"`
	Matches []recordJSON `json:"matches"`
}

type groupJSON struct {
	Title   string       `json:"title,omitempty"`
	Key     string       `json:"key,omitempty"`
	Members []recordJSON `json:"members"`
}

type groupsResponse struct {
	Corpus string      `json:"corpus"`
	Groups []groupJSON `json:"groups"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toRecordJSON(rec *domain.Record) recordJSON {
	ct := domain.ContextTypeUnspecified
	if rec.ContextType != nil {
		ct = *rec.ContextType
	}
	return recordJSON{
		ID:          rec.ID,
		Ref:         rec.Ref,
		Context:     rec.Context,
		ContextType: ct,
		Judgment:    rec.Judgment,
		Text:        rec.Text,
		Morphemes:   rec.Morphemes,
		Gloss:       rec.Gloss,
		Translation: rec.Translation,
		Literal:     rec.Literal,
		RawLines:    rec.RawLines,
	}
}

func toRecordsJSON(records []domain.Record) []recordJSON {
	out := make([]recordJSON, 0, len(records))
	for i := range records {
		out = append(out, toRecordJSON(&records[i]))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// loadCorpus resolves and parses the corpus named by the request.
func (s *Server) loadCorpus(ctx context.Context, w http.ResponseWriter, r *http.Request) (*domain.Corpus, []domain.Diagnostic, string, bool) {
	path := r.URL.Query().Get("corpus")
	if path == "" {
		path = s.DefaultCorpus
	}
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing 'corpus' query parameter")
		return nil, nil, "", false
	}

	corpus, diags, err := s.corpus.Load(ctx, path)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return nil, nil, "", false
	}
	return corpus, diags, path, true
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	corpus, diags, path, ok := s.loadCorpus(r.Context(), w, r)
	if !ok {
		return
	}

	dj := make([]diagnosticJSON, 0, len(diags))
	for _, d := range diags {
		dj = append(dj, diagnosticJSON{Kind: string(d.Kind), Line: d.Line, Ref: d.Ref, Message: d.Message})
	}
	writeJSON(w, http.StatusOK, recordsResponse{
		Corpus:      path,
		Records:     toRecordsJSON(corpus.Records),
		Diagnostics: dj,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	target := r.URL.Query().Get("target")
	if target == "" {
		writeError(w, http.StatusBadRequest, "missing 'target' query parameter")
		return
	}
	field := domain.SearchField(r.URL.Query().Get("field"))
	if field == "" {
		field = domain.FieldGloss
	}
	if !field.IsValid() {
		writeError(w, http.StatusBadRequest, "field must be 'gloss' or 'morpheme'")
		return
	}

	corpus, _, path, ok := s.loadCorpus(r.Context(), w, r)
	if !ok {
		return
	}

	var matches []domain.Record
	var err error
	if field == domain.FieldMorpheme {
		matches, err = s.search.ByMorpheme(r.Context(), corpus, target)
	} else {
		matches, err = s.search.ByGloss(r.Context(), corpus, target)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// An empty match list is a successful result, never an error.
	writeJSON(w, http.StatusOK, searchResponse{
		Corpus:  path,
		Field:   field.String(),
		Target:  target,
		Matches: toRecordsJSON(matches),
	})
}

func (s *Server) handlePairs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	corpus, _, path, ok := s.loadCorpus(r.Context(), w, r)
	if !ok {
		return
	}

	groups, err := s.grouping.MinimalPairs(r.Context(), corpus)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	gj := make([]groupJSON, 0, len(groups))
	for i := range groups {
		seed := groups[i].Seed()
		gj = append(gj, groupJSON{
			Title:   seed.Ref,
			Members: toRecordsJSON(groups[i].Members),
		})
	}
	writeJSON(w, http.StatusOK, groupsResponse{Corpus: path, Groups: gj})
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	corpus, _, path, ok := s.loadCorpus(r.Context(), w, r)
	if !ok {
		return
	}

	classes, err := s.grouping.GlossVariants(r.Context(), corpus)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	gj := make([]groupJSON, 0, len(classes))
	for i := range classes {
		gj = append(gj, groupJSON{
			Key:     classes[i].Key,
			Members: toRecordsJSON(classes[i].Members),
		})
	}
	writeJSON(w, http.StatusOK, groupsResponse{Corpus: path, Groups: gj})
}

// Handler returns the full API handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/records", s.handleRecords)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/pairs", s.handlePairs)
	mux.HandleFunc("/api/variants", s.handleVariants)
	return cors.Default().Handler(mux)
}

// Run serves the API on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("HTTP API listening on %s", addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
