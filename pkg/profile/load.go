package profile

import (
	_ "embed"
	"fmt"

	"github.com/macropower/cvgen/pkg/loader"
	"github.com/macropower/cvgen/pkg/yaml"
)

//go:generate go run ../../internal/schemagen -type profile -o profiles.v1beta1.json

var (
	//go:embed profiles.v1beta1.json
	schemaJSON []byte

	// DefaultValidator validates profiles against the embedded schema.
	DefaultValidator = yaml.MustNewValidator("/profiles.v1beta1.json", schemaJSON)
)

func newEmpty() *Profile {
	return &Profile{}
}

// Load reads the profile at path. JSON and YAML are both accepted.
//
// Errors wrap [loader.ErrNotFound] when the path does not resolve, and
// [loader.ErrMalformed] when the content is not valid or fails schema
// validation.
func Load(path string, opts ...loader.LoaderOpt) (*Profile, error) {
	p, err := loader.Load(path, newEmpty, DefaultValidator, opts...)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return p, nil
}
