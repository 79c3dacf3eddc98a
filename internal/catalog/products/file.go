package products

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type catalogueFile struct {
	Products []Product `yaml:"products"`
}

// LoadFile reads a YAML catalogue from disk and returns a StaticService over it.
func LoadFile(path string) (*StaticService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", path, err)
	}
	items, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("catalogue %s: %w", path, err)
	}
	return NewStaticService(items...), nil
}

// Decode parses a YAML catalogue document. Entries keep their file order.
func Decode(r io.Reader) ([]Product, error) {
	var doc catalogueFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoProducts
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, ErrNoProducts
	}
	for i, p := range doc.Products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidProduct, i+1)
		}
		if strings.TrimSpace(p.Category) == "" {
			return nil, fmt.Errorf("%w: %q has no category", ErrInvalidProduct, p.Name)
		}
	}
	return doc.Products, nil
}
