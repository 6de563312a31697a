package yaml

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

var (
	lineNumberStyle = lipgloss.NewStyle().Faint(true)
	errorLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	caretStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Path locates a value in a document, e.g. "$.work[0].title".
type Path = yaml.Path

func NewPathBuilder() *yaml.PathBuilder {
	// Use the goccy/go-yaml PathBuilder to create a new YAMLPath.
	return &yaml.PathBuilder{}
}

type ErrorWrapper struct {
	Opts []ErrorOpt
}

func NewErrorWrapper(opts ...ErrorOpt) *ErrorWrapper {
	return &ErrorWrapper{
		Opts: opts,
	}
}

// Wrap wraps an error with additional context for [Error]s.
// If the error isn't an [Error], it returns the original error unmodified.
func (ew *ErrorWrapper) Wrap(err error, opts ...ErrorOpt) error {
	if err == nil {
		return nil
	}

	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		for _, opt := range ew.Opts {
			opt(yamlErr)
		}

		for _, opt := range opts {
			opt(yamlErr)
		}

		return yamlErr
	}

	return err
}

// Error represents a YAML error. It includes the original error, and either
// the [*token.Token] where the error occurred or the [*yaml.Path] to the
// offending value.
type Error struct {
	Err         error
	Path        *yaml.Path
	Token       *token.Token
	Source      []byte
	SourceLines int // Number of lines to show before the error in the source.
}

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{
		Err:         err,
		SourceLines: 4,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type ErrorOpt func(e *Error)

func WithSourceLines(lines int) ErrorOpt {
	return func(e *Error) {
		e.SourceLines = lines
	}
}

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) {
		e.Token = tk
	}
}

func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

func (e Error) Error() string {
	if e.Err == nil {
		return ""
	}
	if e.Path == nil && e.Token == nil {
		return e.Err.Error()
	}
	if e.Token == nil && len(e.Source) == 0 {
		return fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
	}

	errMsg, srcErr := e.annotateSource()
	if srcErr != nil {
		slog.Debug("failed to annotate source with error",
			slog.String("path", e.Path.String()),
			slog.Any("error", srcErr),
		)
		// If we can't annotate the source, just return the error without it.
		return fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
	}

	return errMsg
}

func (e Error) Unwrap() error {
	return e.Err
}

// Line returns the 1-based line of the error, or 0 when unknown.
func (e Error) Line() int {
	line, _ := e.position()
	return line
}

// Column returns the 1-based column of the error, or 0 when unknown.
func (e Error) Column() int {
	_, col := e.position()
	return col
}

func (e Error) position() (int, int) {
	tk := e.Token
	if tk == nil && e.Path != nil && len(e.Source) > 0 {
		var err error

		tk, err = getTokenFromPath(e.Source, e.Path)
		if err != nil {
			return 0, 0
		}
	}
	if tk == nil {
		return 0, 0
	}

	return tk.Position.Line, tk.Position.Column
}

func (e Error) annotateSource() (string, error) {
	var (
		tk  = e.Token
		err error
	)
	if tk == nil {
		tk, err = getTokenFromPath(e.Source, e.Path)
		if err != nil {
			return "", fmt.Errorf("get token from path: %w", err)
		}
	}

	errLine, errCol := tk.Position.Line, tk.Position.Column
	errMsg := fmt.Sprintf("[%d:%d] %v:", errLine, errCol, e.Err)

	excerpt := e.printErrorSource(errLine, errCol)
	if excerpt == "" {
		return strings.TrimSuffix(errMsg, ":"), nil
	}

	return fmt.Sprintf("%s\n\n%s", errMsg, excerpt), nil
}

// printErrorSource renders up to SourceLines lines preceding the error line,
// the error line itself, and a caret under the error column.
func (e Error) printErrorSource(errLine, errCol int) string {
	if len(e.Source) == 0 || errLine <= 0 {
		return ""
	}

	lines := strings.Split(strings.TrimRight(string(e.Source), "\n"), "\n")
	if errLine > len(lines) {
		return ""
	}

	first := max(errLine-e.SourceLines, 1)
	width := len(fmt.Sprint(errLine))

	var sb strings.Builder
	for n := first; n <= errLine; n++ {
		prefix := lineNumberStyle.Render(fmt.Sprintf("%*d |", width, n))
		text := lines[n-1]
		if n == errLine {
			text = errorLineStyle.Render(text)
		}

		sb.WriteString(prefix + " " + text + "\n")
	}

	pad := strings.Repeat(" ", width+3+max(errCol-1, 0))
	sb.WriteString(pad + caretStyle.Render("^"))

	return sb.String()
}

func getTokenFromPath(source []byte, path *yaml.Path) (*token.Token, error) {
	file, err := parser.ParseBytes(source, 0)
	if err != nil {
		return nil, fmt.Errorf("parse source bytes into ast.File: %w", err)
	}

	node, err := path.FilterFile(file)
	if err != nil {
		return nil, fmt.Errorf("filter from ast.File by YAMLPath: %w", err)
	}

	// Path.FilterFile returns the VALUE node, but errors should point at the KEY.
	keyToken := findKeyToken(file, path)
	if keyToken != nil {
		return keyToken, nil
	}

	return node.GetToken(), nil
}

// findKeyToken attempts to find the KEY token for the given path by looking
// in the parent node.
func findKeyToken(file *ast.File, path *yaml.Path) *token.Token {
	pathStr := path.String()

	lastDot := strings.LastIndex(pathStr, ".")
	lastBracket := strings.LastIndex(pathStr, "[")

	if lastDot == -1 && lastBracket == -1 {
		return nil // Root path, no parent.
	}

	if lastDot <= lastBracket {
		// Array index case - no key to find.
		return nil
	}

	parentPathStr := pathStr[:lastDot]
	lastSegment := pathStr[lastDot+1:]

	parentPath, err := yaml.PathString(parentPathStr)
	if err != nil {
		return nil
	}

	parentNode, err := parentPath.FilterFile(file)
	if err != nil {
		return nil
	}

	if mapping, ok := parentNode.(*ast.MappingNode); ok {
		for _, val := range mapping.Values {
			if strings.Trim(val.Key.String(), `"'`) == lastSegment {
				return val.Key.GetToken()
			}
		}
	}

	return nil
}
