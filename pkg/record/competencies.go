package record

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

const (
	// StandardSet is the selection set used when none is named.
	StandardSet = "standardSet"

	keyDatabase   = "database"
	keyCategories = "categories"
)

// Competencies holds the competency database, its categories and any number
// of named selection sets. Selection sets are all keys other than "database"
// and "categories", e.g. "standardSet".
type Competencies struct {
	Sets       map[string]*SelectionSet `json:"-"`
	Database   []*Competency            `json:"database,omitempty"`
	Categories []*Category              `json:"categories,omitempty"`
}

// Competency is one entry of the competency database.
type Competency struct {
	ID         string `json:"id,omitempty"         jsonschema:"oneof_type=string;integer"`
	Name       string `json:"name,omitempty"`
	CategoryID string `json:"categoryId,omitempty" jsonschema:"oneof_type=string;integer"`
}

// Category names a group of competencies.
type Category struct {
	ID   string `json:"id,omitempty"   jsonschema:"oneof_type=string;integer"`
	Name string `json:"name,omitempty"`
}

// SelectionSet is an ordered list of competency ids.
type SelectionSet struct {
	CompetencyIDs []string `json:"competencyIds,omitempty"`
}

// UnmarshalYAML decodes the fixed keys and collects every other mapping with
// a competencyIds sequence as a selection set.
func (c *Competencies) UnmarshalYAML(unmarshal func(any) error) error {
	type plain Competencies

	var p plain

	err := unmarshal(&p)
	if err != nil {
		return err
	}

	var raw map[string]any

	err = unmarshal(&raw)
	if err != nil {
		return err
	}

	*c = Competencies(p)

	for name, v := range raw {
		if name == keyDatabase || name == keyCategories {
			continue
		}

		m, ok := v.(map[string]any)
		if !ok {
			continue
		}

		ids, ok := m["competencyIds"].([]any)
		if !ok {
			continue
		}

		set := &SelectionSet{CompetencyIDs: make([]string, 0, len(ids))}
		for _, id := range ids {
			if id == nil {
				continue
			}

			set.CompetencyIDs = append(set.CompetencyIDs, fmt.Sprint(id))
		}

		if c.Sets == nil {
			c.Sets = map[string]*SelectionSet{}
		}

		c.Sets[name] = set
	}

	return nil
}

// JSONSchemaExtend describes selection sets as additional properties.
func (Competencies) JSONSchemaExtend(s *jsonschema.Schema) {
	props := jsonschema.NewProperties()
	props.Set("competencyIds", &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "integer"}}},
	})

	s.AdditionalProperties = &jsonschema.Schema{
		Type:        "object",
		Description: "A named selection set of competency ids.",
		Properties:  props,
	}
}

// GetSet returns the named selection set, or nil.
func (c *Competencies) GetSet(name string) *SelectionSet {
	if c == nil {
		return nil
	}

	return c.Sets[name]
}

func (c *Competencies) GetDatabase() []*Competency {
	if c == nil {
		return nil
	}

	return c.Database
}

func (c *Competencies) GetCategories() []*Category {
	if c == nil {
		return nil
	}

	return c.Categories
}

func (s *SelectionSet) GetCompetencyIDs() []string {
	if s == nil {
		return nil
	}

	return s.CompetencyIDs
}
