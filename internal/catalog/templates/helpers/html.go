package helpers

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates HTML output and keeps the first write error, so component
// bodies can be written as a flat sequence and checked once.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup unchanged.
func (hw *Writer) Raw(markup string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, markup)
}

// Text writes HTML-escaped text.
func (hw *Writer) Text(value string) {
	hw.Raw(templ.EscapeString(value))
}

// Attr writes ` name="value"` with the value escaped.
func (hw *Writer) Attr(name, value string) {
	hw.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// BoolAttr writes ` name` when set is true.
func (hw *Writer) BoolAttr(name string, set bool) {
	if set {
		hw.Raw(" " + name)
	}
}

// Render renders a nested component into the same output.
func (hw *Writer) Render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Err returns the first error encountered.
func (hw *Writer) Err() error {
	return hw.err
}

// TextComponent returns a templ component that renders escaped text.
func TextComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}
