package helpers

import (
	"net/url"
	"strings"
)

// JoinPath appends elem to a normalised base path.
func JoinPath(base, elem string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	elem = strings.Trim(strings.TrimSpace(elem), "/")
	if elem == "" {
		if base == "" {
			return "/"
		}
		return base + "/"
	}
	return base + "/" + elem
}

// WithQuery appends encoded values to path, omitting the "?" when empty.
func WithQuery(path string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
