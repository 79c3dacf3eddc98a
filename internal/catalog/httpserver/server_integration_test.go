package httpserver_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"finitefield.org/product-table/internal/catalog/products"
	"finitefield.org/product-table/internal/catalog/testutil"
)

func get(t *testing.T, url string, htmx bool) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, ts.URL+"/healthz", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
}

func TestProductsPageDefaults(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithEnvironment("Staging"))
	resp, body := get(t, ts.URL+"/", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Products", doc.Find("title").Text())
	require.Equal(t, "Staging", doc.Find(".env-badge").Text())
	require.Equal(t, []string{
		"#Fruits", "Apple $1", "Dragonfruit $1", "Passionfruit $2",
		"#Vegetables", "Spinach $2", "Pumpkin $4", "Peas $1",
	}, testutil.RowTexts(doc))
	require.Equal(t, "6 products", doc.Find(".table-caption").Text())
}

func TestProductsPageFilters(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "in stock only",
			query: "?inStockOnly=on",
			want:  []string{"#Fruits", "Apple $1", "Dragonfruit $1", "#Vegetables", "Spinach $2", "Peas $1"},
		},
		{
			name:  "text filter",
			query: "?q=p",
			want:  []string{"#Fruits", "Apple $1", "Passionfruit $2", "#Vegetables", "Spinach $2", "Pumpkin $4", "Peas $1"},
		},
		{
			name:  "upper case text",
			query: "?q=PEAS",
			want:  []string{"#Vegetables", "Peas $1"},
		},
		{
			name:  "no match",
			query: "?q=kiwi",
			want:  nil,
		},
	}

	for _, tc := range tests {
		resp, body := get(t, ts.URL+"/"+tc.query, false)
		require.Equal(t, http.StatusOK, resp.StatusCode, tc.name)
		doc := testutil.ParseHTML(t, body)
		require.Equal(t, tc.want, testutil.RowTexts(doc), tc.name)
	}
}

func TestTableFragmentRequiresHTMX(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, _ := get(t, ts.URL+"/table?q=p", false)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := get(t, ts.URL+"/table?q=p&inStockOnly=true", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/?inStockOnly=true&q=p", resp.Header.Get("HX-Push-Url"))
	require.Contains(t, resp.Header.Values("Vary"), "HX-Request")

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 0, doc.Find("form.search-bar").Length(), "fragment must not include the search form")
	require.Equal(t, []string{"#Fruits", "Apple $1", "#Vegetables", "Spinach $2", "Peas $1"}, testutil.RowTexts(doc))
}

func TestCustomBasePath(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithBasePath("/shop/"))

	resp, body := get(t, ts.URL+"/shop", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "/shop/table", doc.Find("form.search-bar").AttrOr("hx-get", ""))

	resp, _ = get(t, ts.URL+"/shop/", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/shop/table", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/shop/", resp.Header.Get("HX-Push-Url"))

	resp, _ = get(t, ts.URL+"/", false)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomProductsService(t *testing.T) {
	t.Parallel()

	svc := products.NewStaticService(
		products.Product{Name: "Apple", Category: "Fruits", Price: "$1", Stocked: true},
		products.Product{Name: "Kale", Category: "Vegetables", Price: "$3", Stocked: true},
		products.Product{Name: "Banana", Category: "Fruits", Price: "$2", Stocked: true},
	)
	ts := testutil.NewServer(t, testutil.WithProductsService(svc))

	_, body := get(t, ts.URL+"/", false)
	require.Equal(t, []string{
		"#Fruits", "Apple $1", "#Vegetables", "Kale $3", "#Fruits", "Banana $2",
	}, testutil.RowTexts(testutil.ParseHTML(t, body)))
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, ts.URL+"/public/static/catalog.css", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), ".product-table")
}

func TestRequestsAreLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	ts := testutil.NewServer(t, testutil.WithLogger(zap.New(core)))

	resp, _ := get(t, ts.URL+"/?q=a", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "/", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
}
