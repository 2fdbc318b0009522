// Package export renders the site to a directory of static files.
package export

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"

	"github.com/nexusai/website/internal/logger"
)

// Routes are the pages written by an export, in order.
var Routes = []string{"/", "/privacy", "/terms", "/contact", "/checkout"}

// Exporter renders pages by sending in-process GET requests to a handler,
// so the files match what the server would return.
type Exporter struct {
	handler http.Handler
	static  fs.FS
	log     *slog.Logger
}

func New(handler http.Handler, static fs.FS, log *slog.Logger) *Exporter {
	return &Exporter{
		handler: handler,
		static:  static,
		log:     log.With(logger.Scope("export")),
	}
}

// Result summarises an export.
type Result struct {
	Pages  int
	Assets int
}

// Export writes every route as <route>/index.html under dir and copies the
// static tree to dir/static.
func (e *Exporter) Export(dir string) (Result, error) {
	var res Result

	for _, route := range Routes {
		if err := e.writePage(dir, route); err != nil {
			return res, err
		}
		res.Pages++
	}

	n, err := e.copyStatic(filepath.Join(dir, "static"))
	res.Assets = n
	if err != nil {
		return res, err
	}

	e.log.Info("site exported",
		slog.String("dir", dir),
		slog.Int("pages", res.Pages),
		slog.Int("assets", res.Assets),
	)
	return res, nil
}

// PagePath is the file a route is written to, relative to the export root.
func PagePath(route string) string {
	return filepath.Join(filepath.FromSlash(path.Clean("/"+route)[1:]), "index.html")
}

func (e *Exporter) writePage(dir, route string) error {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))
	if rec.Code != http.StatusOK {
		return fmt.Errorf("render %s: status %d", route, rec.Code)
	}

	target := filepath.Join(dir, PagePath(route))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", route, err)
	}
	if err := os.WriteFile(target, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", route, err)
	}

	e.log.Debug("page written", slog.String("route", route), slog.String("file", target))
	return nil
}

func (e *Exporter) copyStatic(dir string) (int, error) {
	count := 0
	err := fs.WalkDir(e.static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(e.static, name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("copy static assets: %w", err)
	}
	return count, nil
}
