package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/pkg/config"
)

func newTestServer(t *testing.T) (*Server, *Dataset, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "db.json")
	data, err := OpenDataset(path)
	require.NoError(t, err)

	cfg := &config.Config{Env: config.EnvDevelopment}
	return New(cfg, data, zap.NewNop()), data, path
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSeededCollections(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.NotEmpty(t, events)

	w = doJSON(t, srv, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.NotEmpty(t, categories)

	w = doJSON(t, srv, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.NotEmpty(t, users)
}

func TestGetEventNotFoundShape(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/events/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Event not found", body["message"])
}

func TestGetEventInvalidID(t *testing.T) {
	srv, _, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/events/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestCreateAssignsIDAndPersists(t *testing.T) {
	srv, _, path := newTestServer(t)

	draft := model.Event{Title: "New Event", Description: "d", CreatedBy: 1, CategoryIDs: []int64{1}}
	w := doJSON(t, srv, http.MethodPost, "/events", draft)
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(3), created.ID)

	// The mutation is written back to the data file.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "New Event")

	// A fresh dataset sees it too.
	reloaded, err := OpenDataset(path)
	require.NoError(t, err)
	_, found := reloaded.Event(created.ID)
	assert.True(t, found)
}

func TestCreateHonorsClientProvidedID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/events", model.Event{ID: 77, Title: "Client ID"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/events/77", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateDuplicateIDConflicts(t *testing.T) {
	srv, _, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/events", model.Event{ID: 1, Title: "Duplicate"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestUpdateEvent(t *testing.T) {
	srv, data, _ := newTestServer(t)

	existing, found := data.Event(1)
	require.True(t, found)
	existing.Title = "Renamed"

	w := doJSON(t, srv, http.MethodPut, "/events/1", existing)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Title)

	stored, _ := data.Event(1)
	assert.Equal(t, "Renamed", stored.Title)
}

func TestUpdateUnknownEvent(t *testing.T) {
	srv, _, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPut, "/events/999", model.Event{Title: "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEvent(t *testing.T) {
	srv, data, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodDelete, "/events/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, found := data.Event(1)
	assert.False(t, found)

	w = doJSON(t, srv, http.MethodDelete, "/events/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesAreReadOnly(t *testing.T) {
	srv, _, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/categories", model.Category{Name: "new"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	srv, _, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/events", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestDatasetReloadKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	first, err := OpenDataset(path)
	require.NoError(t, err)
	_, err = first.CreateEvent(model.Event{Title: "kept"})
	require.NoError(t, err)

	second, err := OpenDataset(path)
	require.NoError(t, err)
	events := second.Events()
	var found bool
	for _, ev := range events {
		if ev.Title == "kept" {
			found = true
		}
	}
	assert.True(t, found)
}
