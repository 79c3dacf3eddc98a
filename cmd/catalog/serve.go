package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/product-table/internal/catalog/httpserver"
	"finitefield.org/product-table/internal/platform/observability"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr     string
		basePath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the product table over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}
			if basePath != "" {
				cfg.Server.BasePath = basePath
			}

			logger, err := observability.NewLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			svc, err := productService(cfg)
			if err != nil {
				logger.Error("failed to load products", zap.String("file", cfg.ProductsFile), zap.Error(err))
				return err
			}

			srv, err := httpserver.New(httpserver.Config{
				Address:         cfg.Server.Address,
				BasePath:        cfg.Server.BasePath,
				Environment:     cfg.Environment,
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				IdleTimeout:     cfg.Server.IdleTimeout,
				Logger:          logger,
				ProductsService: svc,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serverErr := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			logger.Info("catalog server listening",
				zap.String("addr", cfg.Server.Address),
				zap.String("base_path", cfg.Server.BasePath),
				zap.String("environment", cfg.Environment),
			)

			select {
			case err, ok := <-serverErr:
				if ok {
					logger.Error("http server failed", zap.Error(err))
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown failed", zap.Error(err))
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides CATALOG_HTTP_ADDR)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "mount point for the page routes (overrides CATALOG_BASE_PATH)")
	return cmd
}
