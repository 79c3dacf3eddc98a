package ui

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"finitefield.org/product-table/internal/catalog/filter"
	custommw "finitefield.org/product-table/internal/catalog/httpserver/middleware"
	"finitefield.org/product-table/internal/catalog/listing"
	"finitefield.org/product-table/internal/catalog/products"
	"finitefield.org/product-table/internal/catalog/templates/helpers"
	productstpl "finitefield.org/product-table/internal/catalog/templates/products"
	"finitefield.org/product-table/internal/platform/observability"
)

const loadFailedMessage = "Products are unavailable right now. Please try again later."

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	ProductsService products.Service
}

// Handlers exposes HTTP handlers for the product listing page and fragments.
type Handlers struct {
	products products.Service
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	service := deps.ProductsService
	if service == nil {
		service = products.NewStaticService()
	}
	return &Handlers{
		products: service,
	}
}

// ProductsPage renders the listing page with SSR. htmx partial requests get
// just the table fragment.
func (h *Handlers) ProductsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	l, ok := h.buildListing(w, r)
	if !ok {
		return
	}

	basePath := custommw.BasePathFromContext(ctx)
	if custommw.HTMXInfoFromContext(ctx).Partial() {
		templ.Handler(productstpl.Table(productstpl.TablePayload(l.Rows()))).ServeHTTP(w, r)
		return
	}

	page := productstpl.BuildPageData(basePath, custommw.EnvironmentFromContext(ctx), l.State(), l.Rows())
	templ.Handler(productstpl.Index(page)).ServeHTTP(w, r)
}

// ProductsTable renders the table fragment for htmx requests and pushes the
// canonical page URL into the browser history.
func (h *Handlers) ProductsTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	l, ok := h.buildListing(w, r)
	if !ok {
		return
	}

	basePath := custommw.BasePathFromContext(ctx)
	w.Header().Set("HX-Push-Url", canonicalProductsURL(basePath, l.State()))

	templ.Handler(productstpl.Table(productstpl.TablePayload(l.Rows()))).ServeHTTP(w, r)
}

// buildListing starts a listing from the default state and applies the query
// through the holder setters, the same path user input takes.
func (h *Handlers) buildListing(w http.ResponseWriter, r *http.Request) (*listing.Listing, bool) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	items, err := h.products.List(ctx)
	if err != nil {
		logger.Error("products: list failed", zap.Error(err))
		http.Error(w, loadFailedMessage, http.StatusInternalServerError)
		return nil, false
	}

	l := listing.New(items, filter.State{})
	l.Apply(filter.FromQuery(r.URL.Query()))

	logger.Debug("products: table rendered",
		zap.Int("products", len(items)),
		zap.Int("rows", len(l.Rows())),
		zap.Bool("in_stock_only", l.State().InStockOnly),
	)
	return l, true
}

func canonicalProductsURL(basePath string, state filter.State) string {
	return helpers.WithQuery(helpers.JoinPath(basePath, ""), state.Query())
}
