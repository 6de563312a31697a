package yaml

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// DefaultStyle is the chroma style used by [NewHighlighter].
const DefaultStyle = "onedark"

// Highlighter writes YAML or JSON source with terminal colors.
type Highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// NewHighlighter creates a [Highlighter] for the language ("yaml" or "json")
// using the formatter that matches the color profile. The [termenv.Ascii]
// profile writes the source unchanged.
func NewHighlighter(lang string, profile termenv.Profile) *Highlighter {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	formatterName := "noop"
	switch profile {
	case termenv.TrueColor:
		formatterName = "terminal16m"

	case termenv.ANSI256:
		formatterName = "terminal256"

	case termenv.ANSI:
		formatterName = "terminal8"

	case termenv.Ascii:
	}

	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		formatter: formatters.Get(formatterName),
		style:     styles.Get(DefaultStyle),
	}
}

func (h *Highlighter) Highlight(w io.Writer, src string) error {
	iterator, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("lexer tokenize: %w", err)
	}

	err = h.formatter.Format(w, h.style, iterator)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	return nil
}
