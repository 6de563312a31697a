package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/cvgen/pkg/profile"
)

// ListProfilesParams defines parameters for the list_profiles tool.
type ListProfilesParams struct{}

// ListProfilesResult contains the result of listing profiles.
type ListProfilesResult struct {
	Message  string            `json:"message"`
	Profiles []profile.Summary `json:"profiles"`
	Count    int               `json:"count"`
}

func (s *Server) handleListProfiles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListProfilesParams,
) (*mcp.CallToolResult, ListProfilesResult, error) {
	summaries, err := profile.List(s.profilesDir)
	if err != nil {
		return nil, ListProfilesResult{}, fmt.Errorf("list profiles: %w", err)
	}

	result := ListProfilesResult{
		Message:  fmt.Sprintf("Found %d profiles in %s.", len(summaries), s.profilesDir),
		Profiles: summaries,
		Count:    len(summaries),
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Message}},
	}, result, nil
}
