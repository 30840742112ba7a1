package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewGradleGuardMCPServer creates an MCP server with the GradleGuard audit
// tools registered. The projectPath is the root of the Gradle project to
// audit.
func NewGradleGuardMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"gradleguard",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
