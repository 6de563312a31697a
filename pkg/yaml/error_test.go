package yaml_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/cvgen/pkg/yaml"
)

const recordSource = `basics:
  name: Ada Lovelace
  email: ada@example.com
work:
  - company: Analytical Engines
    title: 42
meta:
  version: v1`

func mustBuildPath(t *testing.T, parts ...any) *yaml.Path {
	t.Helper()

	b := yaml.NewPathBuilder().Root()
	for _, part := range parts {
		switch p := part.(type) {
		case string:
			b = b.Child(p)
		case int:
			b = b.Index(uint(p)) //nolint:gosec // G115: Test input.
		default:
			require.FailNow(t, "unsupported path part")
		}
	}

	return b.Build()
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want string
		err  yaml.Error
	}{
		"with path": {
			err: yaml.Error{
				Err:  errors.New("value is required"),
				Path: mustBuildPath(t, "basics", "name"),
			},
			want: "error at $.basics.name: value is required",
		},
		"without path": {
			err: yaml.Error{
				Err: errors.New("validation error: value is required"),
			},
			want: "validation error: value is required",
		},
		"nil error": {
			err:  yaml.Error{Path: mustBuildPath(t, "basics")},
			want: "",
		},
		"path missing from source": {
			err: yaml.Error{
				Err:    errors.New("bad value"),
				Path:   mustBuildPath(t, "education", 0),
				Source: []byte(recordSource),
			},
			want: "error at $.education[0]: bad value",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestError_Annotated(t *testing.T) {
	t.Parallel()

	err := yaml.NewError(
		errors.New("got number, want string"),
		yaml.WithPath(mustBuildPath(t, "work", 0, "title")),
		yaml.WithSourceLines(2),
		yaml.WithSource([]byte(recordSource)),
	)

	assert.Equal(t, 6, err.Line())
	assert.Equal(t, 5, err.Column())

	msg := err.Error()
	assert.Contains(t, msg, "[6:5] got number, want string:")
	assert.Contains(t, msg, "4 |")
	assert.Contains(t, msg, "company: Analytical Engines")
	assert.Contains(t, msg, "title: 42")
	assert.Contains(t, msg, "^")
	assert.NotContains(t, msg, "ada@example.com")
}

func TestError_Position(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      *yaml.Error
		wantLine int
		wantCol  int
	}{
		"top level key": {
			err: yaml.NewError(errors.New("x"),
				yaml.WithPath(mustBuildPath(t, "meta")),
				yaml.WithSource([]byte(recordSource)),
			),
			wantLine: 7,
			wantCol:  1,
		},
		"nested key": {
			err: yaml.NewError(errors.New("x"),
				yaml.WithPath(mustBuildPath(t, "basics", "email")),
				yaml.WithSource([]byte(recordSource)),
			),
			wantLine: 3,
			wantCol:  3,
		},
		"no source": {
			err: yaml.NewError(errors.New("x"),
				yaml.WithPath(mustBuildPath(t, "basics")),
			),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantLine, tc.err.Line())
			assert.Equal(t, tc.wantCol, tc.err.Column())
		})
	}
}

func TestErrorWrapper_Wrap(t *testing.T) {
	t.Parallel()

	src := []byte(recordSource)
	ew := yaml.NewErrorWrapper(yaml.WithSource(src))

	plain := errors.New("plain")
	assert.Same(t, plain, ew.Wrap(plain))
	require.NoError(t, ew.Wrap(nil))

	wrapped := ew.Wrap(&yaml.Error{
		Err:  errors.New("bad"),
		Path: mustBuildPath(t, "meta", "version"),
	}, yaml.WithSourceLines(0))

	var yamlErr *yaml.Error
	require.ErrorAs(t, wrapped, &yamlErr)
	assert.Equal(t, src, yamlErr.Source)
	assert.Equal(t, 8, yamlErr.Line())
}
