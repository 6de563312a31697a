package record

import "github.com/invopop/jsonschema"

// Flag is a lenient boolean: it is true only when the source value is the
// literal boolean true. Strings, numbers and null all decode to false.
type Flag bool

func (f *Flag) UnmarshalYAML(unmarshal func(any) error) error {
	var v any

	err := unmarshal(&v)
	if err != nil {
		return err
	}

	b, ok := v.(bool)
	*f = Flag(ok && b)

	return nil
}

// JSONSchema accepts any value, since non-boolean values are read as false.
func (Flag) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Only the literal boolean true enables the flag.",
	}
}
