package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"finitefield.org/product-table/internal/catalog/httpserver"
	"finitefield.org/product-table/internal/catalog/products"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithBasePath sets a custom base path for the catalogue routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithProductsService wires a custom product service implementation.
func WithProductsService(service products.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.ProductsService = service
	}
}

// WithEnvironment overrides the environment label.
func WithEnvironment(env string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Environment = env
	}
}

// WithLogger overrides the request logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// NewServer constructs an httptest server running the catalogue HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:         ":0",
		BasePath:        "/",
		Environment:     "Test",
		ProductsService: products.NewStaticService(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
