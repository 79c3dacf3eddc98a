// Package public embeds the stylesheet served next to the catalogue page.
package public

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

// Prefix is the URL path the embedded assets are served under.
const Prefix = "/public/static/"

//go:embed static/*
var static embed.FS

// Handler serves the embedded assets, expecting request paths under Prefix.
func Handler() (http.Handler, error) {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}
	return http.StripPrefix(Prefix, http.FileServer(http.FS(sub))), nil
}
