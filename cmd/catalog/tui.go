package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/product-table/internal/catalog/filter"
	"finitefield.org/product-table/internal/catalog/tui"
	"finitefield.org/product-table/internal/platform/observability"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	var state filter.State

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the product table in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}

			logger := observability.NoopLogger()
			if cfg.TUILogFile != "" {
				logger, err = observability.NewFileLogger(cfg.TUILogFile, cfg.LogLevel)
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				defer func() { _ = logger.Sync() }()
			}

			svc, err := productService(cfg)
			if err != nil {
				return err
			}
			items, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			logger.Info("tui started", zap.Int("products", len(items)))
			return tui.Run(cmd.Context(), tui.New(items, state, logger))
		},
	}

	cmd.Flags().StringVar(&state.FilterText, "filter", "", "initial filter text")
	cmd.Flags().BoolVar(&state.InStockOnly, "in-stock-only", false, "start with the in-stock checkbox ticked")
	return cmd
}
