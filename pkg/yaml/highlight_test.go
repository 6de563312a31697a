package yaml_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/cvgen/pkg/yaml"
)

func TestHighlighter(t *testing.T) {
	t.Parallel()

	yamlSrc := "name: Ada Lovelace\nchildren: 2\n"
	jsonSrc := `{"name": "Ada Lovelace", "children": 2}`

	tcs := map[string]struct {
		src       string
		lang      string
		profile   termenv.Profile
		wantPlain bool
	}{
		"ascii is unchanged": {src: yamlSrc, lang: "yaml", profile: termenv.Ascii, wantPlain: true},
		"truecolor yaml":     {src: yamlSrc, lang: "yaml", profile: termenv.TrueColor},
		"ansi256 json":       {src: jsonSrc, lang: "json", profile: termenv.ANSI256},
		"unknown language":   {src: yamlSrc, lang: "cobol-ish", profile: termenv.Ascii, wantPlain: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, yaml.NewHighlighter(tc.lang, tc.profile).Highlight(&buf, tc.src))

			if tc.wantPlain {
				assert.Equal(t, tc.src, buf.String())
				return
			}

			assert.Contains(t, buf.String(), "\x1b[")
			assert.Contains(t, buf.String(), "Lovelace")
		})
	}
}
