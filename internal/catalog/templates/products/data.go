package products

import (
	"fmt"

	"finitefield.org/product-table/internal/catalog/filter"
	"finitefield.org/product-table/internal/catalog/table"
	"finitefield.org/product-table/internal/catalog/templates/helpers"
)

const (
	// TableID is the DOM id of the swappable table fragment.
	TableID = "product-table"

	pageTitle    = "Products"
	emptyMessage = "No products match."
)

// PageData represents the payload for the product listing page.
type PageData struct {
	Title       string
	Environment string
	Search      SearchBarData
	Table       TableData
}

// SearchBarData binds the search inputs to the current filter state.
type SearchBarData struct {
	Action       string
	FragmentPath string
	HxTarget     string
	FilterText   string
	InStockOnly  bool
}

// TableData contains the fragment payload for the product table.
type TableData struct {
	ID           string
	Rows         []TableRow
	Caption      string
	EmptyMessage string
}

// TableRow is either a category header or a product line.
type TableRow struct {
	Header    bool
	Category  string
	Name      string
	NameClass string
	Price     string
	Stocked   bool
}

// BuildSearchBar binds the filter state to the search form.
func BuildSearchBar(basePath string, state filter.State) SearchBarData {
	return SearchBarData{
		Action:       helpers.JoinPath(basePath, ""),
		FragmentPath: helpers.JoinPath(basePath, "table"),
		HxTarget:     "#" + TableID,
		FilterText:   state.FilterText,
		InStockOnly:  state.InStockOnly,
	}
}

// TablePayload converts rendered rows into the table fragment view model.
func TablePayload(rows []table.Row) TableData {
	data := TableData{
		ID:   TableID,
		Rows: make([]TableRow, 0, len(rows)),
	}
	for _, row := range rows {
		if row.IsHeader() {
			data.Rows = append(data.Rows, TableRow{Header: true, Category: row.Category})
			continue
		}
		p := row.Product
		data.Rows = append(data.Rows, TableRow{
			Category:  p.Category,
			Name:      p.Name,
			NameClass: helpers.ProductNameClass(p.Stocked),
			Price:     p.Price,
			Stocked:   p.Stocked,
		})
	}

	summary := table.Summarize(rows)
	if summary.Empty() {
		data.EmptyMessage = emptyMessage
	}
	data.Caption = caption(summary)
	return data
}

// BuildPageData assembles the full page payload.
func BuildPageData(basePath, environment string, state filter.State, rows []table.Row) PageData {
	return PageData{
		Title:       pageTitle,
		Environment: environment,
		Search:      BuildSearchBar(basePath, state),
		Table:       TablePayload(rows),
	}
}

func caption(summary table.Summary) string {
	switch summary.Products {
	case 0:
		return "0 products"
	case 1:
		return "1 product"
	default:
		return fmt.Sprintf("%d products", summary.Products)
	}
}
