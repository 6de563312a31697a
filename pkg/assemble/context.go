package assemble

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/macropower/cvgen/pkg/yaml"
)

// Context is an ordered mapping from template keys to values.
// Keys keep the order in which they were first set.
type Context struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewContext returns an empty [Context].
func NewContext() *Context {
	return &Context{m: orderedmap.New[string, any]()}
}

// Set sets key to v. Setting an existing key keeps its position.
func (c *Context) Set(key string, v any) {
	c.m.Set(key, v)
}

// Get returns the value of key.
func (c *Context) Get(key string) (any, bool) {
	return c.m.Get(key)
}

// Keys returns the keys in order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

func (c *Context) Len() int {
	return c.m.Len()
}

// MapSlice returns the context as a [yaml.MapSlice].
func (c *Context) MapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		ms = append(ms, yaml.MapItem{Key: pair.Key, Value: pair.Value})
	}

	return ms
}

// MarshalJSON encodes the context as a JSON object with keys in order.
func (c *Context) MarshalJSON() ([]byte, error) {
	return c.m.MarshalJSON() //nolint:wrapcheck // Return the original error.
}

// MarshalYAML encodes the context as a YAML mapping with keys in order.
func (c *Context) MarshalYAML() (any, error) {
	return c.MapSlice(), nil
}

// Values returns the context as a tree of plain maps, slices and scalars, as
// decoded from its JSON form. Struct values are keyed by their JSON names.
func (c *Context) Values() (map[string]any, error) {
	data, err := c.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal context: %w", err)
	}

	var values map[string]any

	err = json.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("unmarshal context: %w", err)
	}

	return values, nil
}
