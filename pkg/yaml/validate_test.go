package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/cvgen/pkg/yaml"
)

const recordSchema = `{
	"type": "object",
	"properties": {
		"basics": {
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"profiles": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"network": {"type": "string"},
							"url": {"type": "string"}
						},
						"required": ["url"]
					}
				}
			}
		},
		"work": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"company": {"type": "string"},
					"highlights": {
						"type": "array",
						"items": {"type": "string"}
					}
				}
			}
		},
		"meta": {
			"type": "object",
			"properties": {
				"_personal": {
					"type": "object",
					"properties": {"children": {"type": "integer"}}
				}
			}
		}
	},
	"required": ["basics"]
}`

func TestNewValidator(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		errMsg     string
		schemaData []byte
		wantErr    bool
	}{
		"valid schema": {
			schemaData: []byte(recordSchema),
		},
		"invalid json": {
			schemaData: []byte(`{"invalid": json}`),
			wantErr:    true,
			errMsg:     "unmarshal schema",
		},
		"invalid schema": {
			schemaData: []byte(`{"type": "invalid_type"}`),
			wantErr:    true,
			errMsg:     "compile schema",
		},
		"empty schema": {
			schemaData: []byte(`{}`),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			validator, err := yaml.NewValidator("test", tc.schemaData)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				assert.Nil(t, validator)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, validator)
		})
	}
}

func TestMustNewValidator(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		yaml.MustNewValidator("test", []byte(`{"type": 1}`))
	})
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	validator, err := yaml.NewValidator("test", []byte(recordSchema))
	require.NoError(t, err)

	tcs := map[string]struct {
		data     any
		wantPath string
	}{
		"valid record": {
			data: map[string]any{
				"basics": map[string]any{"name": "Ada"},
				"work": []any{
					map[string]any{"company": "Engines", "highlights": []any{"Built things"}},
				},
			},
		},
		"missing basics": {
			data:     map[string]any{"work": []any{}},
			wantPath: "$",
		},
		"wrong type for name": {
			data:     map[string]any{"basics": map[string]any{"name": 123}},
			wantPath: "$.basics.name",
		},
		"mapping where sequence expected": {
			data: map[string]any{
				"basics": map[string]any{},
				"work":   map[string]any{"company": "Engines"},
			},
			wantPath: "$.work",
		},
		"invalid highlight": {
			data: map[string]any{
				"basics": map[string]any{},
				"work": []any{
					map[string]any{"company": "Engines"},
					map[string]any{"highlights": []any{"ok", 7}},
				},
			},
			wantPath: "$.work[1].highlights[1]",
		},
		"missing required url in profile": {
			data: map[string]any{
				"basics": map[string]any{
					"profiles": []any{map[string]any{"network": "LinkedIn"}},
				},
			},
			wantPath: "$.basics.profiles[0]",
		},
		"underscore key": {
			data: map[string]any{
				"basics": map[string]any{},
				"meta": map[string]any{
					"_personal": map[string]any{"children": "two"},
				},
			},
			wantPath: "$.meta._personal.children",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := validator.Validate(tc.data)
			if tc.wantPath == "" {
				require.NoError(t, err)
				return
			}

			var yamlErr *yaml.Error
			require.ErrorAs(t, err, &yamlErr)
			require.NotNil(t, yamlErr.Path)
			assert.Equal(t, tc.wantPath, yamlErr.Path.String())
		})
	}
}
