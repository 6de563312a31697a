// Package yaml wraps [github.com/goccy/go-yaml] for decoding master records
// and rendering profiles (JSON is a subset, so both formats are accepted),
// encoding template contexts, and reporting errors with source positions.
package yaml
