package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// FS is the static tree rooted at the directory served under /static/.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Handler serves the static tree. Mount it with the /static/ prefix stripped.
func Handler() http.Handler {
	return http.FileServer(http.FS(FS()))
}
