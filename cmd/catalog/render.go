package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"finitefield.org/product-table/internal/catalog/filter"
	"finitefield.org/product-table/internal/catalog/listing"
	"finitefield.org/product-table/internal/catalog/table"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var state filter.State

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the filtered product table and exit",
		Example: `  catalog render --filter fruit
  catalog render --in-stock-only --products catalogue.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			svc, err := productService(cfg)
			if err != nil {
				return err
			}
			items, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			l := listing.New(items, filter.State{})
			l.Apply(state)
			return writeRows(cmd.OutOrStdout(), l.Rows())
		},
	}

	cmd.Flags().StringVar(&state.FilterText, "filter", "", "only show products whose name contains this text")
	cmd.Flags().BoolVar(&state.InStockOnly, "in-stock-only", false, "only show products in stock")
	return cmd
}

// writeRows prints headers flush left and products indented, with the price
// column aligned. Out-of-stock products are marked with a trailing "*".
func writeRows(w io.Writer, rows []table.Row) error {
	if table.Summarize(rows).Empty() {
		_, err := fmt.Fprintln(w, "No products match.")
		return err
	}

	width := 0
	for _, row := range rows {
		if !row.IsHeader() {
			width = max(width, utf8.RuneCountInString(row.Product.Name))
		}
	}

	for _, row := range rows {
		var err error
		if row.IsHeader() {
			_, err = fmt.Fprintln(w, row.Category)
		} else {
			p := row.Product
			mark := ""
			if !p.Stocked {
				mark = " *"
			}
			_, err = fmt.Fprintf(w, "  %-*s  %s%s\n", width, p.Name, p.Price, mark)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
