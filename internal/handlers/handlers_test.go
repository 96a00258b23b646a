package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahiru.dev/internal/config"
	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/models"
	"tahiru.dev/internal/render"
	"tahiru.dev/internal/services"
)

const profileJSON = `{"login":"tahiru0","avatar_url":"https://avatars.example.com/u/1","bio":"","public_repos":12,"followers":5,"html_url":"https://github.com/tahiru0"}`

func testDocument() *models.Document {
	return &models.Document{
		Avatar: &models.Item{ID: "1", Type: models.KindAvatar, Title: "Tahiru", Span: "col-span-2 row-span-2"},
		Projects: []models.Item{
			{ID: "3", Type: models.KindProject, Title: "Shop", Images: []string{"a.png", "b.png"}, LiveURL: "https://shop.example.com"},
		},
		ContactForm: &models.Item{ID: "12", Type: models.KindContactForm, Title: "Contact", Email: "hello@example.com"},
		Map:         &models.Item{ID: "14", Type: models.KindMap, Title: "Map", Link: "https://maps.example.com"},
	}
}

type testServer struct {
	handler http.Handler
	status  *int32
	block   chan struct{}
	static  string
}

// newTestServer wires the router against a stub GitHub API. With blocking
// set, the stub holds every request until block is closed.
func newTestServer(t *testing.T, blocking bool) *testServer {
	t.Helper()
	status := int32(http.StatusOK)
	ts := &testServer{status: &status}
	if blocking {
		ts.block = make(chan struct{})
	}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ts.block != nil {
			<-ts.block
		}
		code := int(atomic.LoadInt32(ts.status))
		w.WriteHeader(code)
		if code == http.StatusOK {
			_, _ = w.Write([]byte(profileJSON))
		}
	}))
	t.Cleanup(func() {
		if ts.block != nil {
			select {
			case <-ts.block:
			default:
				close(ts.block)
			}
		}
		upstream.Close()
	})

	cfg := config.DefaultConfig()
	cfg.StaticPath = t.TempDir()
	ts.static = cfg.StaticPath
	cfg.GitHub.APIBase = upstream.URL
	cfg.GitHub.PageWait = 50 * time.Millisecond

	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	opts := layout.DefaultOptions()
	gh := services.NewGitHubService(cfg.GitHub, nil)
	portfolio := services.NewPortfolioService(testDocument(), gh, cfg.GitHub.PageWait)
	grid := services.NewGridService(portfolio, opts, cfg.Layout.MaxSessions, nil)
	t.Cleanup(grid.CloseAll)

	ts.handler = SetupRoutes(Dependencies{
		Config:    cfg,
		Renderer:  renderer,
		Layout:    opts,
		GitHub:    gh,
		Portfolio: portfolio,
		Grid:      grid,
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGitHubProxy(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/api/github", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, s-maxage=3600", rec.Header().Get("Cache-Control"))

	var p models.GitHubProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "tahiru0", p.Login)
	assert.Equal(t, 12, p.PublicRepos)
}

func TestGitHubProxyFailure(t *testing.T) {
	ts := newTestServer(t, false)
	atomic.StoreInt32(ts.status, http.StatusForbidden)

	rec := ts.do(t, http.MethodGet, "/api/github", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch GitHub data"}`, rec.Body.String())
}

func TestItems(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/api/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 5)
	assert.Equal(t, "8", items[2].ID)
	assert.Equal(t, "12+", items[2].Repos)
	assert.Equal(t, "Check out my code repositories.", items[2].Description)
}

func TestItemsWhileLoading(t *testing.T) {
	ts := newTestServer(t, true)
	rec := ts.do(t, http.MethodGet, "/api/items", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"status":"loading"}`, rec.Body.String())
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Equal(t, 5, strings.Count(body, `class="item"`))
	assert.Contains(t, body, `data-id="8"`)
	assert.Contains(t, body, "tahiru0")
}

func TestIndexWhileLoading(t *testing.T) {
	ts := newTestServer(t, true)
	rec := ts.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading portfolio")
	assert.Contains(t, rec.Body.String(), `http-equiv="refresh"`)
}

func TestIndexWithFailedProfile(t *testing.T) {
	ts := newTestServer(t, false)
	atomic.StoreInt32(ts.status, http.StatusInternalServerError)

	rec := ts.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Check out my code repositories.")
}

func TestContactRedirect(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/contact?subject=Hi&message=Hi+there", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "mailto:hello@example.com?subject=Hi&body=Hi%20there", rec.Header().Get("Location"))
}

func TestCVDownload(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodGet, "/cv.pdf", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "no CV until one is deployed")

	cv := []byte("%PDF-1.4 test cv")
	require.NoError(t, os.WriteFile(filepath.Join(ts.static, "cv.pdf"), cv, 0o644))

	rec = ts.do(t, http.MethodGet, "/cv.pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, cv, rec.Body.Bytes())
}

func TestGridLifecycle(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodPost, "/api/grid", models.GridOpenRequest{Viewport: models.GridViewport{Width: 1280, Height: 800}})
	require.Equal(t, http.StatusCreated, rec.Code)

	var snap models.GridSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.NotEmpty(t, snap.Handle)
	assert.Len(t, snap.Grid.Positions, 5)

	rec = ts.do(t, http.MethodPost, "/api/grid/"+snap.Handle+"/events", models.GridEvent{
		Type:     models.GridEventResize,
		Viewport: &models.GridViewport{Width: 600, Height: 900},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result models.GridEventResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Grid.DragEnabled)

	rec = ts.do(t, http.MethodPost, "/api/grid/"+snap.Handle+"/events", models.GridEvent{Type: "scroll"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/grid/"+snap.Handle, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/grid/"+snap.Handle, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/grid/"+snap.Handle+"/events", models.GridEvent{Type: models.GridEventPointerUp})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGridOpenBadBody(t *testing.T) {
	ts := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodPost, "/api/grid", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
