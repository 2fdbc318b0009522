package content

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed legal/*.md
var legalFS embed.FS

// LegalDocument is a static policy page written in Markdown.
type LegalDocument struct {
	Slug    string
	Title   string
	Updated string
	source  string
}

var (
	Privacy = LegalDocument{Slug: "privacy", Title: "Privacy Policy", Updated: "October 2024", source: "legal/privacy.md"}
	Terms   = LegalDocument{Slug: "terms", Title: "Terms of Service", Updated: "October 2024", source: "legal/terms.md"}
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var (
	renderedMu sync.Mutex
	rendered   = map[string]string{}
)

// HTML renders the document body. Results are cached per document.
func (d LegalDocument) HTML() (string, error) {
	renderedMu.Lock()
	defer renderedMu.Unlock()

	if html, ok := rendered[d.source]; ok {
		return html, nil
	}

	src, err := legalFS.ReadFile(d.source)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", d.Slug, err)
	}

	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render %s: %w", d.Slug, err)
	}

	rendered[d.source] = buf.String()
	return rendered[d.source], nil
}
