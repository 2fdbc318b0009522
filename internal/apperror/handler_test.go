package apperror

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_AppError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()

	WriteJSON(rec, req, slog.Default(), ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp["error"]["code"])
	assert.Equal(t, "Page not found", resp["error"]["message"])
}

func TestWriteJSON_LogsServerErrors(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/demo/stream", nil)
	rec := httptest.NewRecorder()
	WriteJSON(rec, req, log, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "disk on fire")
	assert.Contains(t, buf.String(), "path=/demo/stream")
}

func TestWriteJSON_ClientErrorsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	WriteJSON(httptest.NewRecorder(), req, log, ErrTooManyRequests)

	assert.Empty(t, buf.String())
}

func TestWriteJSON_HeadHasNoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/nowhere", nil)
	rec := httptest.NewRecorder()

	WriteJSON(rec, req, slog.Default(), ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestWantsJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, WantsJSON(req))

	req.Header.Set("Accept", "text/html,application/json;q=0.9")
	assert.True(t, WantsJSON(req))
}
