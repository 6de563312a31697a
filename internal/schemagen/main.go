// Command schemagen writes the JSON schema for a cvgen document type.
// It is run by go:generate from the package that owns the type.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/macropower/cvgen/pkg/profile"
	"github.com/macropower/cvgen/pkg/record"
	"github.com/macropower/cvgen/pkg/schema"
)

var (
	docType = flag.String("type", "record", "Document type, one of: record, profile")
	outFile = flag.String("o", "schema.json", "Output file for the generated schema")
)

func main() {
	flag.Parse()

	var gen *schema.Generator

	switch *docType {
	case "record":
		gen = schema.NewGenerator(record.New(),
			schema.WithComments("github.com/macropower/cvgen/pkg/record", "."),
			schema.WithNullableProperties(),
		)
	case "profile":
		gen = schema.NewGenerator(&profile.Profile{},
			schema.WithComments("github.com/macropower/cvgen/pkg/profile", "."),
		)
	default:
		log.Fatalf("unknown type %q", *docType)
	}

	jsData, err := gen.Generate()
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, jsData, 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
