// Package web embeds the single-page client so the server binary
// ships self-contained.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

func Handler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// embed paths are fixed at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
