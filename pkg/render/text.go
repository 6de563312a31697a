package render

import (
	"fmt"
	"html"
	htmltemplate "html/template"
	"io"
	"strings"
	"text/template"

	"github.com/macropower/cvgen/pkg/assemble"
	"github.com/macropower/cvgen/pkg/loader"
)

// Text renders Go templates.
// Context keys are addressed by name, e.g. {{.name}} or
// {{range .work}}{{.company}}{{end}}. Missing keys do not fail rendering.
//
// HTML templates use [htmltemplate], so context values are escaped; the
// anchors built by [Text.Build] are inserted as they are.
type Text struct {
	tmpl    executor
	anchors map[string]bool
	html    bool
}

type executor interface {
	Execute(w io.Writer, data any) error
}

var textFuncs = map[string]any{
	"join":  join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
}

// NewText parses src. The ext selects the engine and hyperlink format:
// ".html" produces escaped output with anchors, everything else plain text
// with Markdown links.
func NewText(name, src, ext string) (*Text, error) {
	var (
		tmpl executor
		err  error
	)

	if ext == ".html" {
		tmpl, err = htmltemplate.New(name).
			Option("missingkey=zero").
			Funcs(htmltemplate.FuncMap(textFuncs)).
			Parse(src)
	} else {
		tmpl, err = template.New(name).
			Option("missingkey=zero").
			Funcs(template.FuncMap(textFuncs)).
			Parse(src)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse template: %w", loader.ErrMalformed, err)
	}

	return &Text{
		tmpl:    tmpl,
		html:    ext == ".html",
		anchors: map[string]bool{},
	}, nil
}

// Build returns the hyperlink as text.
func (t *Text) Build(target, display string) any {
	l := NewLink(target, display)
	if t.html {
		a := fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(l.Target), html.EscapeString(l.Text))
		t.anchors[a] = true

		return a
	}

	return fmt.Sprintf("[%s](%s)", l.Text, l.Target)
}

func (t *Text) Render(w io.Writer, c *assemble.Context) error {
	values, err := c.Values()
	if err != nil {
		return err
	}

	if t.html {
		for k, v := range values {
			if s, ok := v.(string); ok && t.anchors[s] {
				values[k] = htmltemplate.HTML(s) //nolint:gosec // Built from escaped parts.
			}
		}
	}

	err = t.tmpl.Execute(w, values)
	if err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}

// join joins the string forms of a list's items.
func join(sep string, items any) string {
	list, ok := items.([]any)
	if !ok {
		return fmt.Sprint(items)
	}

	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, fmt.Sprint(item))
	}

	return strings.Join(parts, sep)
}
