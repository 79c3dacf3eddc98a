// Package filter holds the user-controlled filter criteria for the product
// table and notifies observers when they change.
package filter

import (
	"net/url"
	"strings"
)

const (
	// ParamText is the query parameter carrying the filter text.
	ParamText = "q"
	// ParamInStockOnly is the query parameter carrying the in-stock checkbox.
	ParamInStockOnly = "inStockOnly"
)

// State is the current filter criteria. The zero value is the default state.
type State struct {
	FilterText  string
	InStockOnly bool
}

// IsZero reports whether the state equals the defaults.
func (s State) IsZero() bool {
	return s.FilterText == "" && !s.InStockOnly
}

// Query encodes the state as query parameters, omitting defaults.
func (s State) Query() url.Values {
	values := url.Values{}
	if s.FilterText != "" {
		values.Set(ParamText, s.FilterText)
	}
	if s.InStockOnly {
		values.Set(ParamInStockOnly, "true")
	}
	return values
}

// FromQuery decodes a state from query parameters. The filter text is kept
// verbatim.
func FromQuery(values url.Values) State {
	return State{
		FilterText:  values.Get(ParamText),
		InStockOnly: parseBool(values.Get(ParamInStockOnly)),
	}
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}
