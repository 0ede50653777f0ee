// Package markup is the small HTML writer the view components are built on.
// Text and attribute values are escaped with templ's escaper.
package markup

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Writer writes HTML to an io.Writer and remembers the first error, so a
// component can emit its markup without checking every call.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// New returns a Writer rendering to w. ctx is passed to nested components.
func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Raw writes s unescaped. Only use it for markup literals.
func (h *Writer) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes escaped character data.
func (h *Writer) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Int writes an integer as text.
func (h *Writer) Int(n int) {
	h.Raw(strconv.Itoa(n))
}

// Attr writes ` name="value"` with value escaped.
func (h *Writer) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes a boolean attribute when cond holds.
func (h *Writer) AttrIf(cond bool, name string) {
	if cond {
		h.Raw(" " + name)
	}
}

// Open writes a start tag with the given name/value attribute pairs.
func (h *Writer) Open(tag string, attrs ...string) {
	h.Raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.Attr(attrs[i], attrs[i+1])
	}
	h.Raw(">")
}

// Close writes an end tag.
func (h *Writer) Close(tag string) {
	h.Raw("</" + tag + ">")
}

// Element writes a complete element with escaped text content.
func (h *Writer) Element(tag, text string, attrs ...string) {
	h.Open(tag, attrs...)
	h.Text(text)
	h.Close(tag)
}

// Render renders a nested component into the same output.
func (h *Writer) Render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// Err returns the first write error.
func (h *Writer) Err() error {
	return h.err
}

// Component wraps a markup-writing function as a templ component.
func Component(fn func(h *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := New(ctx, w)
		fn(h)
		return h.Err()
	})
}

// Classes joins the non-empty class names with spaces.
func Classes(names ...string) string {
	out := make([]byte, 0, 64)
	for _, name := range names {
		if name == "" {
			continue
		}
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, name...)
	}
	return string(out)
}
