// Package schema generates JSON schemas for cvgen documents from their Go
// types, using [github.com/invopop/jsonschema].
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator reflects a Go value into a JSON schema document.
type Generator struct {
	reflector *jsonschema.Reflector
	v         any
	comments  [][2]string
	nullable  bool
}

// GeneratorOpt configures a [Generator].
type GeneratorOpt func(*Generator)

// WithComments reads Go doc comments from the package directory dir (relative
// to the working directory), whose import path is base, into schema
// descriptions.
func WithComments(base, dir string) GeneratorOpt {
	return func(g *Generator) {
		g.comments = append(g.comments, [2]string{base, dir})
	}
}

// WithNullableProperties also accepts null for every object property below
// the root, so that a null reads the same as an absent key. Array items are
// left as they are.
func WithNullableProperties() GeneratorOpt {
	return func(g *Generator) {
		g.nullable = true
	}
}

// NewGenerator creates a [Generator] for v.
// Additional properties are always allowed.
func NewGenerator(v any, opts ...GeneratorOpt) *Generator {
	g := &Generator{
		v: v,
		reflector: &jsonschema.Reflector{
			AllowAdditionalProperties: true,
			DoNotReference:            true,
			ExpandedStruct:            true,
		},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns the indented JSON schema.
func (g *Generator) Generate() ([]byte, error) {
	for _, c := range g.comments {
		err := g.reflector.AddGoComments(c[0], c[1])
		if err != nil {
			return nil, fmt.Errorf("add go comments from %s: %w", c[1], err)
		}
	}

	js := g.reflector.Reflect(g.v)
	if g.nullable {
		allowNullProperties(js)
	}

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return append(data, '\n'), nil
}

// allowNullProperties walks s and makes each of its properties nullable.
// A typed property keeps its keywords and moves its type into an anyOf with
// null; properties and items only apply to objects and arrays, so a null
// value passes them.
func allowNullProperties(s *jsonschema.Schema) {
	if s == nil {
		return
	}

	if s.Properties != nil {
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			makeNullable(pair.Value)
			allowNullProperties(pair.Value)
		}
	}

	allowNullProperties(s.Items)
	allowNullProperties(s.AdditionalProperties)
}

func makeNullable(s *jsonschema.Schema) {
	null := &jsonschema.Schema{Type: "null"}

	switch {
	case s.Type != "" && s.Type != "null":
		s.AnyOf = []*jsonschema.Schema{{Type: s.Type}, null}
		s.Type = ""
	case len(s.OneOf) > 0:
		s.OneOf = append(s.OneOf, null)
	}
}
