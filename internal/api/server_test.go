package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellarworks/internal/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Server{DB: db, AdminKey: "secret"}
}

func TestHandleStatus(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cellarworks", body["name"])
	assert.Equal(t, true, body["persistent"])
}

func TestHandleStatusWithoutDB(t *testing.T) {
	s := &Server{}

	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["persistent"])
}

func TestHandleRunsWithoutDB(t *testing.T) {
	s := &Server{}

	rec := httptest.NewRecorder()
	s.handleRuns(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleRunsEmpty(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	s.handleRuns(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	// An empty history still serves a JSON array, not null.
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandleRunDetail(t *testing.T) {
	s := testServer(t)

	t.Run("missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleRunDetail(rec, httptest.NewRequest(http.MethodGet, "/api/v1/run/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleRunDetail(rec, httptest.NewRequest(http.MethodGet, "/api/v1/run/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleRunDetail(rec, httptest.NewRequest(http.MethodGet, "/api/v1/run/42", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	s := testServer(t)
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	t.Run("get passes without auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.adminOnly(ok)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("post without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.adminOnly(ok)(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("post with wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		rec := httptest.NewRecorder()
		s.adminOnly(ok)(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("post with valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer secret")
		rec := httptest.NewRecorder()
		s.adminOnly(ok)(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("post disabled without admin key", func(t *testing.T) {
		bare := &Server{}
		rec := httptest.NewRecorder()
		bare.adminOnly(ok)(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandleSimulate(t *testing.T) {
	s := testServer(t)

	t.Run("rejects non-POST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleSimulate(rec, httptest.NewRequest(http.MethodGet, "/api/v1/simulate", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("rejects bad json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		s.handleSimulate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate",
			strings.NewReader(`{"crop": "nightshade"}`))
		rec := httptest.NewRecorder()
		s.handleSimulate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("runs and saves", func(t *testing.T) {
		body := `{
			"crop": "sunfruit",
			"fermenters": 1,
			"plots": [{"name": "hillside", "tiles": {"sunfruit": 1}}],
			"economy": {"fruit_price": {"sunfruit": 101}}
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate?label=smoke", strings.NewReader(body))
		rec := httptest.NewRecorder()
		s.handleSimulate(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out struct {
			RunID  int64 `json:"run_id"`
			Result struct {
				Days int `json:"Days"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Greater(t, out.RunID, int64(0))
		assert.Equal(t, 112, out.Result.Days)

		runs, err := s.DB.RecentRuns(1)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "smoke", runs[0].Label)
	})
}
