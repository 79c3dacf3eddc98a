package testutil

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// RowTexts flattens the product table into "#Category" and "Name Price" strings.
func RowTexts(doc *goquery.Document) []string {
	var rows []string
	doc.Find("#product-table tbody tr").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("category-row") {
			rows = append(rows, "#"+s.Find("th").Text())
			return
		}
		rows = append(rows, s.Find("td").First().Text()+" "+s.Find("td.product-price").Text())
	})
	return rows
}
