// Package layout renders the HTML document shell shared by catalogue pages.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"finitefield.org/product-table/internal/catalog/templates/helpers"
)

// DefaultHTMXSource is the htmx build loaded by pages.
const DefaultHTMXSource = "https://unpkg.com/htmx.org@1.9.12"

// Meta describes the document head and chrome.
type Meta struct {
	Title       string
	Environment string
	HTMXSource  string
}

// Base wraps the children supplied via templ.WithChildren in the document shell.
func Base(meta Meta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		htmxSrc := meta.HTMXSource
		if htmxSrc == "" {
			htmxSrc = DefaultHTMXSource
		}

		hw := helpers.NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`)
		hw.Text(meta.Title)
		hw.Raw(`</title>`)
		hw.Raw(`<link rel="stylesheet" href="/public/static/catalog.css">`)
		hw.Raw(`<script defer`)
		hw.Attr("src", htmxSrc)
		hw.Raw(`></script></head><body><header class="page-header"><h1>`)
		hw.Text(meta.Title)
		hw.Raw(`</h1>`)
		if meta.Environment != "" {
			hw.Raw(`<span`)
			hw.Attr("class", helpers.EnvironmentBadgeClass(meta.Environment))
			hw.Raw(`>`)
			hw.Text(meta.Environment)
			hw.Raw(`</span>`)
		}
		hw.Raw(`</header><main>`)
		hw.Render(templ.ClearChildren(ctx), templ.GetChildren(ctx))
		hw.Raw(`</main></body></html>`)
		return hw.Err()
	})
}
