// Package render fills document templates with an [assemble.Context].
//
// [Open] picks an engine from the template's file extension: Word documents
// are handled by [DOCX], and text formats by [Text].
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/macropower/cvgen/api"
	"github.com/macropower/cvgen/pkg/assemble"
	"github.com/macropower/cvgen/pkg/loader"
)

// ErrUnsupportedTemplate is returned by [Open] for unknown template extensions.
var ErrUnsupportedTemplate = errors.New("unsupported template")

// TextExtensions are the template extensions handled by [Text].
var TextExtensions = []string{".md", ".txt", ".html", ".tmpl", ".gotmpl"}

// Document is an opened template.
// It builds the hyperlink values stored in the context, so the same Document
// must be used for assembly and rendering.
type Document interface {
	assemble.LinkBuilder
	Render(w io.Writer, c *assemble.Context) error
}

// Link is a hyperlink value.
type Link struct {
	Target string `json:"target"`
	Text   string `json:"text"`
}

// NewLink creates a [Link]. The text defaults to the target.
func NewLink(target, text string) Link {
	if text == "" {
		text = target
	}

	return Link{Target: target, Text: text}
}

// LinkBuilder builds plain [Link] values, for contexts that are printed
// rather than rendered.
var LinkBuilder = assemble.LinkBuilderFunc(func(target, display string) any {
	return NewLink(target, display)
})

// Open reads the template at path.
func Open(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".docx" && !slices.Contains(TextExtensions, ext) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTemplate, ext)
	}

	data, err := api.ReadFile(path)
	if err != nil {
		if api.IsMissing(err) {
			return nil, fmt.Errorf("open template: %w: %w", loader.ErrNotFound, err)
		}

		return nil, fmt.Errorf("open template: %w", err)
	}

	if ext == ".docx" {
		return NewDOCX(data)
	}

	return NewText(filepath.Base(path), string(data), ext)
}
