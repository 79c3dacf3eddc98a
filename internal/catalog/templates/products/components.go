package products

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"finitefield.org/product-table/internal/catalog/filter"
	"finitefield.org/product-table/internal/catalog/templates/helpers"
	"finitefield.org/product-table/internal/catalog/templates/layout"
)

// Index renders the full listing page.
func Index(page PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Render(ctx, SearchBar(page.Search))
		hw.Render(ctx, Table(page.Table))
		return hw.Err()
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		meta := layout.Meta{Title: page.Title, Environment: page.Environment}
		return layout.Base(meta).Render(templ.WithChildren(ctx, body), w)
	})
}

// SearchBar renders the filter form. Every input event asks htmx for a fresh
// table fragment; without JavaScript the form submits to the page itself.
func SearchBar(data SearchBarData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Raw(`<form class="search-bar" method="get" role="search"`)
		hw.Attr("action", data.Action)
		hw.Attr("hx-get", data.FragmentPath)
		hw.Attr("hx-target", data.HxTarget)
		hw.Raw(` hx-swap="outerHTML" hx-trigger="input">`)

		hw.Raw(`<input type="text" placeholder="Search..." autocomplete="off"`)
		hw.Attr("name", filter.ParamText)
		hw.Attr("value", data.FilterText)
		hw.Raw(`>`)

		hw.Raw(`<label><input type="checkbox" value="true"`)
		hw.Attr("name", filter.ParamInStockOnly)
		hw.BoolAttr("checked", data.InStockOnly)
		hw.Raw(`> Only show products in stock</label>`)

		hw.Raw(`<noscript><button type="submit">Search</button></noscript>`)
		hw.Raw(`</form>`)
		return hw.Err()
	})
}

// Table renders the grouped product table fragment.
func Table(data TableData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Raw(`<div class="product-table"`)
		hw.Attr("id", data.ID)
		hw.Raw(`><table><thead><tr><th>Name</th><th>Price</th></tr></thead><tbody>`)
		for _, row := range data.Rows {
			if row.Header {
				hw.Raw(`<tr class="category-row"><th colspan="2">`)
				hw.Text(row.Category)
				hw.Raw(`</th></tr>`)
				continue
			}
			hw.Raw(`<tr class="product-row"><td>`)
			hw.Raw(`<span`)
			hw.Attr("class", row.NameClass)
			if !row.Stocked {
				hw.Raw(` style="color: red"`)
			}
			hw.Raw(`>`)
			hw.Text(row.Name)
			hw.Raw(`</span></td><td class="product-price">`)
			hw.Text(row.Price)
			hw.Raw(`</td></tr>`)
		}
		hw.Raw(`</tbody></table>`)
		if data.EmptyMessage != "" {
			hw.Raw(`<p class="empty-state">`)
			hw.Text(data.EmptyMessage)
			hw.Raw(`</p>`)
		}
		hw.Raw(`<p class="table-caption">`)
		hw.Text(data.Caption)
		hw.Raw(`</p></div>`)
		return hw.Err()
	})
}
