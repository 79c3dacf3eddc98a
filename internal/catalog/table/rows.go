// Package table turns a product list and the current filter into the ordered
// rows of the grouped product table.
package table

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"finitefield.org/product-table/internal/catalog/products"
)

// RowKind distinguishes category headers from product lines.
type RowKind int

const (
	// KindCategoryHeader is a row spanning both columns that names a category.
	KindCategoryHeader RowKind = iota
	// KindProductLine is a Name/Price row for a single product.
	KindProductLine
)

func (k RowKind) String() string {
	switch k {
	case KindCategoryHeader:
		return "category"
	case KindProductLine:
		return "product"
	default:
		return "unknown"
	}
}

// Row is one rendered table row. Category is set for header rows; Product is
// set for product lines.
type Row struct {
	Kind     RowKind
	Category string
	Product  products.Product
}

// CategoryHeader builds a header row.
func CategoryHeader(category string) Row {
	return Row{Kind: KindCategoryHeader, Category: category}
}

// ProductLine builds a product row.
func ProductLine(p products.Product) Row {
	return Row{Kind: KindProductLine, Product: p}
}

// IsHeader reports whether the row is a category header.
func (r Row) IsHeader() bool {
	return r.Kind == KindCategoryHeader
}

// BuildRows filters products by name and stock status and groups them under
// category headers. Headers are emitted whenever a passing product's category
// differs from the previous passing product's, so a category interrupted by
// another one gets a second header.
func BuildRows(items []products.Product, filterText string, inStockOnly bool) []Row {
	rows := make([]Row, 0, len(items))
	needle := lower(filterText)

	var (
		lastCategory string
		hasLast      bool
	)
	for _, p := range items {
		if !strings.Contains(lower(p.Name), needle) {
			continue
		}
		if inStockOnly && !p.Stocked {
			continue
		}
		if !hasLast || p.Category != lastCategory {
			rows = append(rows, CategoryHeader(p.Category))
			lastCategory = p.Category
			hasLast = true
		}
		rows = append(rows, ProductLine(p))
	}
	return rows
}

// Summary counts the rows of a rendered table.
type Summary struct {
	Products   int
	Categories int
}

// Empty reports whether no product matched.
func (s Summary) Empty() bool {
	return s.Products == 0
}

// Summarize counts product lines and header rows.
func Summarize(rows []Row) Summary {
	var s Summary
	for _, row := range rows {
		if row.IsHeader() {
			s.Categories++
			continue
		}
		s.Products++
	}
	return s
}

func lower(s string) string {
	if s == "" {
		return s
	}
	// cases.Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}
