package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/cvgen/pkg/generate"
)

var errMissingArgument = errors.New("missing required argument")

// GenerateParams defines parameters for the generate_cv tool.
type GenerateParams struct {
	Template string `json:"template"          jsonschema:"path to the template (.docx, .md, .txt, .html, .tmpl or .gotmpl)"`
	Output   string `json:"output"            jsonschema:"path the rendered CV is written to"`
	Profile  string `json:"profile,omitempty" jsonschema:"profile id or path from list_profiles (optional)"`
}

// GenerateResult describes the written document.
type GenerateResult struct {
	Output    string `json:"output"`
	ProfileID string `json:"profileId,omitempty"`
	Size      string `json:"size"`
	Bytes     int    `json:"bytes"`
}

func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	params GenerateParams,
) (*mcp.CallToolResult, GenerateResult, error) {
	if params.Template == "" || params.Output == "" {
		return nil, GenerateResult{}, fmt.Errorf("%w: template and output", errMissingArgument)
	}

	g := &generate.Generator{
		Master:      s.master,
		Template:    params.Template,
		Output:      params.Output,
		Profile:     params.Profile,
		ProfilesDir: s.profilesDir,
	}

	res, err := g.Run(ctx)
	if err != nil {
		return nil, GenerateResult{}, err //nolint:wrapcheck // Already wrapped with context.
	}

	result := GenerateResult{
		Output:    res.Output,
		ProfileID: res.ProfileID,
		Size:      humanize.Bytes(uint64(res.Bytes)), //nolint:gosec // G115: Length is never negative.
		Bytes:     res.Bytes,
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Wrote %s (%s).", result.Output, result.Size)},
		},
	}, result, nil
}
