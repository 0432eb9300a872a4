package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sourcefile "github.com/glosskit/glosskit-cli/internal/adapters/driven/source/file"
	"github.com/glosskit/glosskit-cli/internal/core/services"
)

const apiCorpus = "^ex\n^id ex1 _id\n^mb I speak _mb\n^gl 1SG say _gl\n_ex\n" +
	"^ex\n^id ex2 _id\n^mb me speak _mb\n^gl 1SG say _gl\n_ex\n" +
	"^ex\n^id ex3 _id\n^mb she speak-s _mb\n^gl 3SG say _gl\n_ex\n"

// newTestServer wires a server over real services and a corpus on disk.
func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "corpus.wriml")
	require.NoError(t, os.WriteFile(path, []byte(apiCorpus), 0o644))

	srv := NewServer(
		services.NewCorpusService(sourcefile.New()),
		services.NewGroupingService(),
		services.NewSearchService(),
	)
	return srv, path
}

func doGet(t *testing.T, srv *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleRecords(t *testing.T) {
	srv, path := newTestServer(t)

	rec := doGet(t, srv, "/api/records?corpus="+path)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp recordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, path, resp.Corpus)
	require.Len(t, resp.Records, 3)
	assert.Equal(t, "ex1", resp.Records[0].Ref)
	assert.Equal(t, "unspecified", resp.Records[0].ContextType)
	assert.Empty(t, resp.Diagnostics)
}

func TestHandleRecordsMissingCorpusParam(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doGet(t, srv, "/api/records")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecordsDefaultCorpus(t *testing.T) {
	srv, path := newTestServer(t)
	srv.DefaultCorpus = path

	rec := doGet(t, srv, "/api/records")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleRecordsCorpusNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doGet(t, srv, "/api/records?corpus=/nonexistent/corpus.wriml")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestHandleSearch(t *testing.T) {
	srv, path := newTestServer(t)

	rec := doGet(t, srv, "/api/search?corpus="+path+"&target=3SG")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "gloss", resp.Field)
	assert.Equal(t, "3SG", resp.Target)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "ex3", resp.Matches[0].Ref)
}

func TestHandleSearchByMorpheme(t *testing.T) {
	srv, path := newTestServer(t)

	rec := doGet(t, srv, "/api/search?corpus="+path+"&target=speak&field=morpheme")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "morpheme", resp.Field)
	assert.Len(t, resp.Matches, 3)
}

func TestHandleSearchNoMatchesIsOK(t *testing.T) {
	srv, path := newTestServer(t)

	rec := doGet(t, srv, "/api/search?corpus="+path+"&target=PST")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Matches)
}

func TestHandleSearchValidation(t *testing.T) {
	srv, path := newTestServer(t)

	rec := doGet(t, srv, "/api/search?corpus="+path)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "target is required")

	rec = doGet(t, srv, "/api/search?corpus="+path+"&target=say&field=translation")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown field is rejected")
}

func TestHandlePairs(t *testing.T) {
	srv, path := newTestServer(t)

	rec := doGet(t, srv, "/api/pairs?corpus="+path)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp groupsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// ex1/ex2 share "1SG say" and are identical sets, not pairs; ex3
	// differs by substitution. Every record seeds or joins some group.
	total := 0
	for _, g := range resp.Groups {
		total += len(g.Members)
	}
	assert.Equal(t, 3, total)
}

func TestHandleVariants(t *testing.T) {
	srv, path := newTestServer(t)

	rec := doGet(t, srv, "/api/variants?corpus="+path)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp groupsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "1SG say", resp.Groups[0].Key)
	assert.Len(t, resp.Groups[0].Members, 2)
	assert.Equal(t, "3SG say", resp.Groups[1].Key)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, path := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/records?corpus="+path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
