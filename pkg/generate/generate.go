// Package generate runs the full pipeline for one CV: load the master record
// and profile, assemble the context, render the template and write the
// output file.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/macropower/cvgen/api"
	"github.com/macropower/cvgen/pkg/assemble"
	"github.com/macropower/cvgen/pkg/log"
	"github.com/macropower/cvgen/pkg/profile"
	"github.com/macropower/cvgen/pkg/record"
	"github.com/macropower/cvgen/pkg/render"
)

// Generator generates one CV document.
type Generator struct {
	// Master is the path to the master record.
	Master string
	// Template is the path to the document template.
	Template string
	// Output is the path the rendered document is written to.
	Output string
	// Profile is a profile path, file stem or id. Empty means no profile.
	Profile string
	// ProfilesDir is where profile names are looked up.
	ProfilesDir string
	// Debounce is how long [Generator.Watch] waits for changes to settle.
	Debounce time.Duration
}

// Result describes a completed generation.
type Result struct {
	Output    string
	ProfileID string
	Bytes     int
	Duration  time.Duration
}

// Run generates the document once.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	doc, err := render.Open(g.Template)
	if err != nil {
		return nil, err //nolint:wrapcheck // Already wrapped with context.
	}

	c, prof, err := g.Context(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = doc.Render(&buf, c)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", g.Template, err)
	}

	err = api.WriteFile(g.Output, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	res := &Result{
		Output:    g.Output,
		ProfileID: prof.GetID(),
		Bytes:     buf.Len(),
		Duration:  time.Since(start),
	}

	log.FromContext(ctx).InfoContext(ctx, "generated document",
		slog.String("output", res.Output),
		slog.String("profile", res.ProfileID),
		slog.String("size", humanize.Bytes(uint64(res.Bytes))), //nolint:gosec // G115: Length is never negative.
		slog.Duration("duration", res.Duration),
	)

	return res, nil
}

// Context loads the master record and profile and assembles the template
// context. The links builder may be nil.
func (g *Generator) Context(links assemble.LinkBuilder) (*assemble.Context, *profile.Profile, error) {
	rec, err := record.Load(g.Master)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // Already wrapped with context.
	}

	prof, err := g.loadProfile()
	if err != nil {
		return nil, nil, err
	}

	return assemble.Assemble(rec, prof, links), prof, nil
}

// ProfilePath resolves the configured profile, or returns "" when none is set.
func (g *Generator) ProfilePath() (string, error) {
	if g.Profile == "" {
		return "", nil
	}

	path, err := profile.Resolve(g.Profile, g.ProfilesDir)
	if err != nil {
		return "", fmt.Errorf("resolve profile: %w", err)
	}

	return path, nil
}

func (g *Generator) loadProfile() (*profile.Profile, error) {
	path, err := g.ProfilePath()
	if err != nil || path == "" {
		return nil, err
	}

	slog.Debug("using profile", slog.String("path", path))

	return profile.Load(path) //nolint:wrapcheck // Already wrapped with context.
}
