package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/nexusai/website/internal/config"
)

func newTestRouter(buf *bytes.Buffer) *chi.Mux {
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRouter(RouterParams{Config: &config.Config{}, Log: log})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("home"))
	})
	r.Get("/terms", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("terms"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	return r
}

func TestRouter_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(&buf)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/terms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "msg=request")
	assert.Contains(t, buf.String(), "uri=/terms")
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "scope=http")
}

func TestRouter_SkipsHealthLogs(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(&buf)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRouter_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(&buf)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "request failed")
}

func TestRouter_TrailingSlashAndHead(t *testing.T) {
	r := newTestRouter(&bytes.Buffer{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/terms/", nil))
	assert.Equal(t, "terms", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/terms", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestStartServer_Lifecycle(t *testing.T) {
	cfg := &config.Config{
		Address:         "127.0.0.1",
		Port:            freePort(t),
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := newTestRouter(&bytes.Buffer{})

	lc := fxtest.NewLifecycle(t)
	StartServer(lc, r, cfg, log)
	require.NoError(t, lc.Start(context.Background()))

	resp, err := http.Get(fmt.Sprintf("http://%s/", cfg.ListenAddr()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "home", string(body))

	require.NoError(t, lc.Stop(context.Background()))

	_, err = http.Get(fmt.Sprintf("http://%s/", cfg.ListenAddr()))
	assert.Error(t, err)
}
