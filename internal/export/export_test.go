package export

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagePath(t *testing.T) {
	assert.Equal(t, "index.html", PagePath("/"))
	assert.Equal(t, filepath.Join("privacy", "index.html"), PagePath("/privacy"))
	assert.Equal(t, filepath.Join("checkout", "index.html"), PagePath("/checkout/"))
}

func pageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>" + r.URL.Path + "</p>"))
	})
}

func TestExport_WritesPagesAndAssets(t *testing.T) {
	dir := t.TempDir()
	static := fstest.MapFS{
		"styles.css":   {Data: []byte("body{}")},
		"js/demo.js":   {Data: []byte("// demo")},
		"images/a.svg": {Data: []byte("<svg/>")},
	}

	res, err := New(pageHandler(), static, slog.New(slog.NewTextHandler(io.Discard, nil))).Export(dir)
	require.NoError(t, err)
	assert.Equal(t, Result{Pages: 5, Assets: 3}, res)

	for route, file := range map[string]string{
		"/":         "index.html",
		"/privacy":  "privacy/index.html",
		"/terms":    "terms/index.html",
		"/contact":  "contact/index.html",
		"/checkout": "checkout/index.html",
	} {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(file)))
		require.NoError(t, err, file)
		assert.Equal(t, "<p>"+route+"</p>", string(data))
	}

	data, err := os.ReadFile(filepath.Join(dir, "static", "js", "demo.js"))
	require.NoError(t, err)
	assert.Equal(t, "// demo", string(data))
}

func TestExport_FailsOnErrorStatus(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/terms" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	res, err := New(h, fstest.MapFS{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Export(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render /terms: status 500")
	assert.Equal(t, 2, res.Pages)
}
