package record

import (
	_ "embed"
	"fmt"

	"github.com/macropower/cvgen/pkg/loader"
	"github.com/macropower/cvgen/pkg/yaml"
)

//go:generate go run ../../internal/schemagen -type record -o records.v1beta1.json

var (
	//go:embed records.v1beta1.json
	schemaJSON []byte

	// DefaultValidator validates master records against the embedded schema.
	DefaultValidator = yaml.MustNewValidator("/records.v1beta1.json", schemaJSON)
)

// Load reads the master record at path. JSON and YAML are both accepted.
//
// Errors wrap [loader.ErrNotFound] when the path does not resolve, and
// [loader.ErrMalformed] when the content is not valid or fails schema
// validation.
func Load(path string, opts ...loader.LoaderOpt) (*Record, error) {
	rec, err := loader.Load(path, New, DefaultValidator, opts...)
	if err != nil {
		return nil, fmt.Errorf("load master record: %w", err)
	}

	return rec, nil
}

// Parse decodes a master record from data.
func Parse(data []byte, opts ...loader.LoaderOpt) (*Record, error) {
	l := loader.NewLoaderFromBytes(data, New, DefaultValidator, opts...)

	err := l.Validate()
	if err != nil {
		return nil, fmt.Errorf("parse master record: %w", err)
	}

	rec, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("parse master record: %w", err)
	}

	return rec, nil
}
