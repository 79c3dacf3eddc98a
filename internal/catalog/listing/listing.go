// Package listing composes the product list, the filter holder and the table
// renderer into one filterable product table.
package listing

import (
	"finitefield.org/product-table/internal/catalog/filter"
	"finitefield.org/product-table/internal/catalog/products"
	"finitefield.org/product-table/internal/catalog/table"
)

// Listing recomputes its rows from scratch whenever the filter holder changes.
// Like the holder, it is owned by a single session.
type Listing struct {
	items  []products.Product
	holder *filter.Holder
	rows   []table.Row
}

// New builds a listing over items starting from the given filter state.
func New(items []products.Product, initial filter.State) *Listing {
	l := &Listing{
		items:  items,
		holder: filter.NewHolder(initial),
	}
	l.rerender(initial)
	l.holder.Subscribe(l.rerender)
	return l
}

func (l *Listing) rerender(state filter.State) {
	l.rows = table.BuildRows(l.items, state.FilterText, state.InStockOnly)
}

// State returns the current filter state.
func (l *Listing) State() filter.State {
	return l.holder.State()
}

// Rows returns the rows for the current state.
func (l *Listing) Rows() []table.Row {
	return l.rows
}

// SetFilterText forwards to the holder.
func (l *Listing) SetFilterText(text string) {
	l.holder.SetFilterText(text)
}

// SetInStockOnly forwards to the holder.
func (l *Listing) SetInStockOnly(flag bool) {
	l.holder.SetInStockOnly(flag)
}

// Apply moves the listing to state through the setters, touching only the
// fields that differ.
func (l *Listing) Apply(state filter.State) {
	current := l.holder.State()
	if state.FilterText != current.FilterText {
		l.holder.SetFilterText(state.FilterText)
	}
	if state.InStockOnly != current.InStockOnly {
		l.holder.SetInStockOnly(state.InStockOnly)
	}
}

// OnChange registers fn to run after the rows have been recomputed.
func (l *Listing) OnChange(fn func(filter.State, []table.Row)) func() {
	return l.holder.Subscribe(func(state filter.State) {
		fn(state, l.rows)
	})
}
