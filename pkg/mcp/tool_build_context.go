package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/cvgen/pkg/generate"
	"github.com/macropower/cvgen/pkg/yaml"
)

// BuildContextParams defines parameters for the build_context tool.
type BuildContextParams struct {
	Profile string `json:"profile,omitempty" jsonschema:"profile id or path from list_profiles (optional)"`
}

// BuildContextResult contains the assembled template context.
type BuildContextResult struct {
	Context   map[string]any `json:"context"`
	ProfileID string         `json:"profileId,omitempty"`
}

func (s *Server) handleBuildContext(
	_ context.Context,
	_ *mcp.CallToolRequest,
	params BuildContextParams,
) (*mcp.CallToolResult, BuildContextResult, error) {
	g := &generate.Generator{
		Master:      s.master,
		Profile:     params.Profile,
		ProfilesDir: s.profilesDir,
	}

	c, prof, err := g.Context(nil)
	if err != nil {
		return nil, BuildContextResult{}, err //nolint:wrapcheck // Already wrapped with context.
	}

	values, err := c.Values()
	if err != nil {
		return nil, BuildContextResult{}, fmt.Errorf("encode context: %w", err)
	}

	text, err := yaml.Marshal(c)
	if err != nil {
		return nil, BuildContextResult{}, fmt.Errorf("encode context: %w", err)
	}

	result := BuildContextResult{
		Context:   values,
		ProfileID: prof.GetID(),
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: truncateString(string(text), 4000)}},
	}, result, nil
}
