package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/product-table/internal/catalog/products"
)

func runCatalog(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("CATALOG_PRODUCTS_FILE", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderSample(t *testing.T) {
	out, err := runCatalog(t, "render")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Fruits",
		"  Apple         $1",
		"  Dragonfruit   $1",
		"  Passionfruit  $2 *",
		"Vegetables",
		"  Spinach       $2",
		"  Pumpkin       $4 *",
		"  Peas          $1",
		"",
	}, "\n")
	require.Equal(t, want, out)
}

func TestRenderFilters(t *testing.T) {
	out, err := runCatalog(t, "render", "--in-stock-only", "--filter", "P")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Fruits",
		"  Apple    $1",
		"Vegetables",
		"  Spinach  $2",
		"  Peas     $1",
		"",
	}, "\n")
	require.Equal(t, want, out)

	out, err = runCatalog(t, "render", "--filter", "kiwi")
	require.NoError(t, err)
	require.Equal(t, "No products match.\n", out)
}

func TestRenderProductsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`products:
  - name: Kale
    category: Vegetables
    price: $3
    stocked: true
  - name: Fig
    category: Fruits
    price: $2
    stocked: false
`), 0o600))

	out, err := runCatalog(t, "render", "--products", path)
	require.NoError(t, err)
	require.Equal(t, "Vegetables\n  Kale  $3\nFruits\n  Fig   $2 *\n", out)
}

func TestRenderRejectsBadProductsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: []\n"), 0o600))

	_, err := runCatalog(t, "render", "--products", path)
	require.ErrorIs(t, err, products.ErrNoProducts)

	_, err = runCatalog(t, "render", "--products", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderRejectsArgs(t *testing.T) {
	_, err := runCatalog(t, "render", "extra")
	require.Error(t, err)
}

func TestRootListsSubcommands(t *testing.T) {
	cmd := newRootCmd()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Subset(t, names, []string{"serve", "tui", "render"})
}
