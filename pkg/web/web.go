// Package web embeds the browser frontend served under /static.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler serves the embedded static directory.
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return http.FileServer(http.FS(sub))
}
