// Package loader reads JSON or YAML documents from disk into typed values.
//
// A document is first decoded generically and checked against a JSON schema,
// then decoded into its Go type. Failures are classified as [ErrNotFound] or
// [ErrMalformed]; malformed documents also carry a [*yaml.Error] pointing at
// the offending line and column.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/macropower/cvgen/api"
	"github.com/macropower/cvgen/pkg/yaml"
)

var (
	// ErrNotFound indicates that a document path did not resolve to a file.
	ErrNotFound = errors.New("not found")
	// ErrMalformed indicates that a document is not valid structured data, or
	// that it does not satisfy its schema.
	ErrMalformed = errors.New("malformed")

	errEmpty = errors.New("empty document")
)

// Validator validates decoded data against a schema.
type Validator interface {
	Validate(data any) error
}

// Defaulter is implemented by documents that fill in defaults after decoding.
type Defaulter interface {
	EnsureDefaults()
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*loaderOptions)

type loaderOptions struct {
	validator   Validator
	sourceLines int
}

// WithValidator replaces the default validator. A nil validator disables
// schema validation.
func WithValidator(v Validator) LoaderOpt {
	return func(o *loaderOptions) {
		o.validator = v
	}
}

// WithSourceLines sets how many lines of source precede the offending line
// in error excerpts.
func WithSourceLines(n int) LoaderOpt {
	return func(o *loaderOptions) {
		o.sourceLines = n
	}
}

// Loader decodes one document into a T.
type Loader[T any] struct {
	validator Validator
	newFunc   func() T
	yamlError *yaml.ErrorWrapper
	data      []byte
}

// NewLoaderFromBytes creates a [Loader] from byte data.
// The newFunc parameter is the constructor for type T (e.g. record.New).
func NewLoaderFromBytes[T any](
	data []byte,
	newFunc func() T,
	defaultValidator Validator,
	opts ...LoaderOpt,
) *Loader[T] {
	options := &loaderOptions{
		validator:   defaultValidator,
		sourceLines: 4,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Loader[T]{
		data:      data,
		newFunc:   newFunc,
		validator: options.validator,
		yamlError: yaml.NewErrorWrapper(
			yaml.WithSource(data),
			yaml.WithSourceLines(options.sourceLines),
		),
	}
}

// NewLoaderFromFile creates a [Loader] from a file path.
// It returns an error wrapping [ErrNotFound] when the path does not resolve
// to a regular file.
func NewLoaderFromFile[T any](
	path string,
	newFunc func() T,
	defaultValidator Validator,
	opts ...LoaderOpt,
) (*Loader[T], error) {
	data, err := api.ReadFile(path)
	if err != nil {
		if api.IsMissing(err) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return nil, err //nolint:wrapcheck // Return the original error.
	}

	slog.Debug("read document",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
	)

	return NewLoaderFromBytes(data, newFunc, defaultValidator, opts...), nil
}

// Validate checks that the data is well-formed and satisfies the schema.
func (l *Loader[T]) Validate() error {
	var doc any

	err := l.decode(&doc)
	if err != nil {
		return err
	}

	if l.validator != nil {
		err = l.validator.Validate(doc)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, l.yamlError.Wrap(err))
		}
	}

	return nil
}

// Load decodes and returns the document.
// It does not validate; call [Loader.Validate] first.
//
//nolint:ireturn // Generic type parameter return is intentional.
func (l *Loader[T]) Load() (T, error) {
	v := l.newFunc()

	err := l.decode(v)
	if err != nil {
		var zero T
		return zero, err
	}

	if d, ok := any(v).(Defaulter); ok {
		d.EnsureDefaults()
	}

	return v, nil
}

func (l *Loader[T]) decode(v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(l.data))

	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrMalformed, errEmpty)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, l.yamlError.Wrap(err))
	}

	return nil
}

// Load reads, validates and decodes the document at path.
//
//nolint:ireturn // Generic type parameter return is intentional.
func Load[T any](path string, newFunc func() T, defaultValidator Validator, opts ...LoaderOpt) (T, error) {
	var zero T

	l, err := NewLoaderFromFile(path, newFunc, defaultValidator, opts...)
	if err != nil {
		return zero, err
	}

	err = l.Validate()
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	v, err := l.Load()
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}
