package products

import "context"

// StaticService serves a fixed in-memory catalogue.
type StaticService struct {
	products []Product
}

// NewStaticService returns a StaticService holding the provided products, or
// the sample catalogue when none are given.
func NewStaticService(items ...Product) *StaticService {
	if len(items) == 0 {
		items = Sample()
	}
	return &StaticService{products: append([]Product(nil), items...)}
}

// List implements Service.
func (s *StaticService) List(_ context.Context) ([]Product, error) {
	return append([]Product(nil), s.products...), nil
}

// Sample returns the built-in demo catalogue.
func Sample() []Product {
	return []Product{
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Apple"},
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Dragonfruit"},
		{Category: "Fruits", Price: "$2", Stocked: false, Name: "Passionfruit"},
		{Category: "Vegetables", Price: "$2", Stocked: true, Name: "Spinach"},
		{Category: "Vegetables", Price: "$4", Stocked: false, Name: "Pumpkin"},
		{Category: "Vegetables", Price: "$1", Stocked: true, Name: "Peas"},
	}
}
