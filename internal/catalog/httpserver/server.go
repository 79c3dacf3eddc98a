package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	custommw "finitefield.org/product-table/internal/catalog/httpserver/middleware"
	"finitefield.org/product-table/internal/catalog/httpserver/ui"
	"finitefield.org/product-table/internal/catalog/products"
	"finitefield.org/product-table/internal/catalog/templates/helpers"
	"finitefield.org/product-table/internal/platform/config"
	"finitefield.org/product-table/internal/platform/observability"
	"finitefield.org/product-table/public"
)

const (
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

// Config holds runtime options for the catalogue HTTP server.
type Config struct {
	Address         string
	BasePath        string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	Logger          *zap.Logger
	ProductsService products.Service
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.TraceMiddleware())
	router.Use(observability.InjectLoggerMiddleware(logger))
	router.Use(observability.RequestLoggerMiddleware())
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(defaultRequestTimeout))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets, err := public.Handler()
	if err != nil {
		return nil, err
	}
	router.Handle(public.Prefix+"*", assets)

	handlers := ui.NewHandlers(ui.Dependencies{
		ProductsService: cfg.ProductsService,
	})

	mountCatalogRoutes(router, config.NormalizeBasePath(cfg.BasePath), cfg.Environment, handlers)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout:      durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       durationOr(cfg.IdleTimeout, defaultIdleTimeout),
	}, nil
}

func mountCatalogRoutes(router chi.Router, base, environment string, h *ui.Handlers) {
	router.Group(func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.RequestInfoMiddleware(base, environment))

		r.Get(helpers.JoinPath(base, ""), h.ProductsPage)
		if base != "/" {
			r.Get(base, h.ProductsPage)
		}
		RegisterFragment(r, helpers.JoinPath(base, "table"), h.ProductsTable)
	})
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
