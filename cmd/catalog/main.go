package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finitefield.org/product-table/internal/catalog/products"
	"finitefield.org/product-table/internal/platform/config"
)

type rootOptions struct {
	productsFile string
	envFile      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Filterable product table",
		Long: `catalog shows a product list grouped by category with a search box and an
"in stock only" checkbox.

Run "catalog serve" for the web page, "catalog tui" for the terminal view, or
"catalog render" to print one filtered table and exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.productsFile, "products", "", "YAML product file (overrides CATALOG_PRODUCTS_FILE)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with local overrides")

	cmd.AddCommand(
		newServeCmd(opts),
		newTUICmd(opts),
		newRenderCmd(opts),
	)
	return cmd
}

// load resolves configuration and applies flag overrides.
func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(config.WithEnvFile(o.envFile))
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if o.productsFile != "" {
		cfg.ProductsFile = o.productsFile
	}
	return cfg, nil
}

// productService returns the file-backed catalogue when one is configured and
// the built-in sample otherwise.
func productService(cfg config.Config) (*products.StaticService, error) {
	if cfg.ProductsFile == "" {
		return products.NewStaticService(), nil
	}
	svc, err := products.LoadFile(cfg.ProductsFile)
	if err != nil {
		return nil, err
	}
	return svc, nil
}
