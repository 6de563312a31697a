package mcp

const (
	name         = "cvgen"
	instructions = `MCP Server 'cvgen' builds tailored CVs from a master record and rendering profiles.

When to use these tools:
- Inspecting which rendering profiles are available
- Checking exactly which values a template will receive for a profile
- Generating a CV document from a template

REQUIRED workflow:
1. Use 'list_profiles' first to see the available profile ids
2. Use 'build_context' with one of those ids to inspect the template context
3. Use 'generate_cv' with a template path and an output path to write the document

IMPORTANT: Profile arguments MUST be ids or paths returned by 'list_profiles'.
`
)

// truncateString truncates a string to maxLen characters with ellipsis if needed.
func truncateString(str string, maxLen int) string {
	if len(str) > maxLen {
		return str[:maxLen] + "\n[OUTPUT TRUNCATED]"
	}

	return str
}
