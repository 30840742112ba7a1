package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/catalog"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/config"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/gitinfo"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/scanner"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/application"
)

// registerTools registers the GradleGuard MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("gradleguard_audit",
			mcplib.WithDescription("Audit every Gradle build file in the project for hardcoded dependency versions. Returns the full verification report as JSON."),
		),
		handleAudit(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("gradleguard_audit_file",
			mcplib.WithDescription("Audit a single Gradle build file. Constraints from the rest of the project still apply."),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Build file path relative to the project root"),
			),
		),
		handleAuditFile(projectPath),
	)
}

func newAuditService() *application.AuditService {
	return application.NewAuditService(
		scanner.New(),
		config.New(),
		catalog.New(),
		gitinfo.New(),
	)
}

func handleAudit(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAuditService().Audit(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleAuditFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := newAuditService().AuditFile(projectPath, file)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
