package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	"github.com/nguyenthenguyen/docx"

	"github.com/macropower/cvgen/pkg/assemble"
	"github.com/macropower/cvgen/pkg/loader"
)

// DOCX renders Word templates.
//
// Scalar context values replace {{key}} (or {{ key }}) placeholders in the
// body, headers and footers. A [Link] value replaces the placeholder with its
// text, and also replaces the placeholder in hyperlink targets, so a template
// hyperlink pointing at {{email}} ends up pointing at the mailto address.
// Sequence values are not expanded.
type DOCX struct {
	links map[string]Link
	data  []byte
	mu    sync.Mutex
}

// NewDOCX parses a Word document.
func NewDOCX(data []byte) (*DOCX, error) {
	_, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: read docx: %w", loader.ErrMalformed, err)
	}

	return &DOCX{
		data:  data,
		links: map[string]Link{},
	}, nil
}

// Build registers a hyperlink target with the document and returns its [Link].
func (d *DOCX) Build(target, display string) any {
	l := NewLink(target, display)

	d.mu.Lock()
	d.links[l.Target] = l
	d.mu.Unlock()

	return l
}

// Links returns the registered hyperlink count.
func (d *DOCX) Links() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.links)
}

// Render fills the template and writes the document to w.
// The template itself is not modified, so Render may be called repeatedly.
func (d *DOCX) Render(w io.Writer, c *assemble.Context) error {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(d.data), int64(len(d.data)))
	if err != nil {
		return fmt.Errorf("read docx: %w", err)
	}

	doc := r.Editable()

	for _, key := range c.Keys() {
		v, _ := c.Get(key)

		text, target, ok := d.scalar(v)
		if !ok {
			slog.Debug("skip non-scalar value in docx template", slog.String("key", key))
			continue
		}

		for _, placeholder := range placeholders(key) {
			err := replaceAll(doc, placeholder, text)
			if err != nil {
				return fmt.Errorf("replace %s: %w", key, err)
			}

			if target == "" {
				continue
			}

			for _, p := range []string{placeholder, url.PathEscape(placeholder)} {
				err := doc.ReplaceLink(p, target, -1)
				if err != nil {
					return fmt.Errorf("replace link %s: %w", key, err)
				}
			}
		}
	}

	err = doc.Write(w)
	if err != nil {
		return fmt.Errorf("write docx: %w", err)
	}

	return nil
}

// scalar returns the display text of v, and the hyperlink target for links.
func (d *DOCX) scalar(v any) (string, string, bool) {
	switch v := v.(type) {
	case string:
		return v, "", true
	case int:
		return strconv.Itoa(v), "", true
	case Link:
		d.mu.Lock()
		_, registered := d.links[v.Target]
		d.mu.Unlock()

		if !registered {
			slog.Debug("link was not built by this document", slog.String("target", v.Target))
		}

		return v.Text, v.Target, true
	case fmt.Stringer:
		return v.String(), "", true
	}

	return "", "", false
}

func replaceAll(doc *docx.Docx, placeholder, text string) error {
	err := doc.Replace(placeholder, text, -1)
	if err != nil {
		return err //nolint:wrapcheck // Wrapped by caller.
	}

	err = doc.ReplaceHeader(placeholder, text)
	if err != nil {
		return err //nolint:wrapcheck // Wrapped by caller.
	}

	return doc.ReplaceFooter(placeholder, text) //nolint:wrapcheck // Wrapped by caller.
}

func placeholders(key string) []string {
	return []string{"{{" + key + "}}", "{{ " + key + " }}"}
}
