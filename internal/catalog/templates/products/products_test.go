package products

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/product-table/internal/catalog/filter"
	catalog "finitefield.org/product-table/internal/catalog/products"
	"finitefield.org/product-table/internal/catalog/table"
)

func renderDoc(t *testing.T, page PageData) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Index(page).Render(context.Background(), &buf))
	return parseHTML(t, buf.Bytes())
}

func parseHTML(t *testing.T, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestTablePayloadMapsRows(t *testing.T) {
	t.Parallel()

	rows := table.BuildRows(catalog.Sample(), "p", false)
	data := TablePayload(rows)

	require.Equal(t, TableID, data.ID)
	require.Len(t, data.Rows, len(rows))
	require.True(t, data.Rows[0].Header)
	require.Equal(t, "Fruits", data.Rows[0].Category)
	require.Equal(t, "Apple", data.Rows[1].Name)
	require.Equal(t, "product-name", data.Rows[1].NameClass)
	require.Equal(t, "Passionfruit", data.Rows[2].Name)
	require.False(t, data.Rows[2].Stocked)
	require.Contains(t, data.Rows[2].NameClass, "out-of-stock")
	require.Equal(t, "5 products", data.Caption)
	require.Empty(t, data.EmptyMessage)
}

func TestTablePayloadEmpty(t *testing.T) {
	t.Parallel()

	data := TablePayload(table.BuildRows(catalog.Sample(), "zzz", false))
	require.Empty(t, data.Rows)
	require.Equal(t, "No products match.", data.EmptyMessage)
	require.Equal(t, "0 products", data.Caption)

	single := TablePayload(table.BuildRows(catalog.Sample(), "apple", false))
	require.Equal(t, "1 product", single.Caption)
}

func TestBuildSearchBarPaths(t *testing.T) {
	t.Parallel()

	root := BuildSearchBar("/", filter.State{FilterText: "pe", InStockOnly: true})
	require.Equal(t, "/", root.Action)
	require.Equal(t, "/table", root.FragmentPath)
	require.Equal(t, "#product-table", root.HxTarget)
	require.Equal(t, "pe", root.FilterText)
	require.True(t, root.InStockOnly)

	nested := BuildSearchBar("/shop", filter.State{})
	require.Equal(t, "/shop/", nested.Action)
	require.Equal(t, "/shop/table", nested.FragmentPath)
}

func TestIndexRendersSearchBarAndTable(t *testing.T) {
	t.Parallel()

	state := filter.State{FilterText: `<"p">`, InStockOnly: true}
	rows := table.BuildRows(catalog.Sample(), "", true)
	doc := renderDoc(t, BuildPageData("/", "Staging", state, rows))

	require.Equal(t, "Products", doc.Find("title").Text())
	require.Equal(t, "Staging", doc.Find(".env-badge").Text())

	input := doc.Find(`form.search-bar input[name="q"]`)
	require.Equal(t, 1, input.Length())
	require.Equal(t, `<"p">`, input.AttrOr("value", ""))
	require.Equal(t, "Search...", input.AttrOr("placeholder", ""))

	checkbox := doc.Find(`form.search-bar input[name="inStockOnly"]`)
	_, checked := checkbox.Attr("checked")
	require.True(t, checked)
	require.Contains(t, doc.Find("form.search-bar label").Text(), "Only show products in stock")

	form := doc.Find("form.search-bar")
	require.Equal(t, "/table", form.AttrOr("hx-get", ""))
	require.Equal(t, "#product-table", form.AttrOr("hx-target", ""))

	var cells []string
	doc.Find("#product-table tbody tr").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("category-row") {
			require.Equal(t, "2", s.Find("th").AttrOr("colspan", ""))
			cells = append(cells, "#"+s.Text())
			return
		}
		cells = append(cells, s.Find("td").First().Text()+" "+s.Find("td.product-price").Text())
	})
	require.Equal(t, []string{"#Fruits", "Apple $1", "Dragonfruit $1", "#Vegetables", "Spinach $2", "Peas $1"}, cells)

	headers := doc.Find("#product-table thead th")
	require.Equal(t, 2, headers.Length())
	require.Equal(t, "Name", headers.First().Text())
	require.Equal(t, "Price", headers.Last().Text())
}

func TestTableMarksOutOfStockNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rows := table.BuildRows(catalog.Sample(), "", false)
	require.NoError(t, Table(TablePayload(rows)).Render(context.Background(), &buf))
	doc := parseHTML(t, buf.Bytes())

	var red []string
	doc.Find("span.out-of-stock").Each(func(_ int, s *goquery.Selection) {
		require.Equal(t, "color: red", s.AttrOr("style", ""))
		red = append(red, s.Text())
	})
	require.Equal(t, []string{"Passionfruit", "Pumpkin"}, red)
	require.Equal(t, 0, doc.Find(".empty-state").Length())
	require.Equal(t, "6 products", doc.Find(".table-caption").Text())
}

func TestTableEmptyState(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Table(TablePayload(nil)).Render(context.Background(), &buf))
	doc := parseHTML(t, buf.Bytes())

	require.Equal(t, 0, doc.Find("tbody tr").Length())
	require.Equal(t, "No products match.", doc.Find(".empty-state").Text())
}

func TestSearchBarUnchecked(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, SearchBar(BuildSearchBar("/", filter.State{})).Render(context.Background(), &buf))
	doc := parseHTML(t, buf.Bytes())

	_, checked := doc.Find(`input[name="inStockOnly"]`).Attr("checked")
	require.False(t, checked)
	require.Equal(t, "", doc.Find(`input[name="q"]`).AttrOr("value", "missing"))
}
