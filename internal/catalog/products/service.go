package products

import (
	"context"
	"errors"
)

// Service exposes the product catalogue rendered by the table views.
type Service interface {
	// List returns every product in catalogue order. The slice is owned by the caller.
	List(ctx context.Context) ([]Product, error)
}

var (
	// ErrNoProducts is returned when a catalogue source contains no products.
	ErrNoProducts = errors.New("catalogue contains no products")
	// ErrInvalidProduct is returned when a catalogue entry lacks a name or category.
	ErrInvalidProduct = errors.New("invalid product")
)

// Product is a single displayable catalogue item. Price is already formatted for display.
type Product struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Stocked  bool   `yaml:"stocked"`
}
