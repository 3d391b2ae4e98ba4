package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nikhil-pandey/switchboard/internal/driver"
	"github.com/nikhil-pandey/switchboard/internal/naming"
)

// Handler wires a Registry and a driver.Runtime into an *server.MCPServer,
// one tool per PreparedAgent.
type Handler struct {
	registry *Registry
	runtime  driver.Runtime
}

func NewHandler(registry *Registry, runtime driver.Runtime) *Handler {
	return &Handler{registry: registry, runtime: runtime}
}

// Build constructs the underlying mcp-go server, advertising tool-listing
// capability only, and registers one tool per agent.
func (h *Handler) Build(name, version string) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	for _, agent := range h.registry.List() {
		s.AddTool(toolDefinition(agent.ToolName, agent.Description, agent.Tags), h.callToolHandler(agent.ToolName))
	}

	return s
}

// toolDefinition builds the Tool's ListTools shape.
func toolDefinition(toolName, description string, tags []string) mcp.Tool {
	desc := fmt.Sprintf("task, cwd: string — %s", description)
	if len(tags) > 0 {
		desc = fmt.Sprintf("%s [tags: %s]", desc, strings.Join(tags, ", "))
	}
	return mcp.NewTool(toolName,
		mcp.WithDescription(desc),
		mcp.WithString("task",
			mcp.Required(),
			mcp.Description("the task to run"),
		),
		mcp.WithString("cwd",
			mcp.Required(),
			mcp.Description("must be an absolute path"),
		),
	)
}

func (h *Handler) callToolHandler(toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Tools are only ever registered under agent.ToolName in Build, so
		// this lookup cannot actually miss for a name mcp-go routed here;
		// mcp-go's own dispatcher produces MethodNotFound for anything else.
		agent, ok := h.registry.Get(toolName)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q", toolName)
		}

		task, err := req.RequireString("task")
		if err != nil {
			return nil, fmt.Errorf("missing required field: %w", err)
		}
		cwd, err := req.RequireString("cwd")
		if err != nil {
			return nil, fmt.Errorf("missing required field: %w", err)
		}
		if !filepath.IsAbs(cwd) {
			return nil, fmt.Errorf("cwd must be an absolute path, got %q", cwd)
		}

		result, err := driver.Run(ctx, h.runtime, agent, naming.SafeName(agent.Name), task, cwd)
		if err != nil {
			slog.Error("mcpserver: driver launch failed", "tool", toolName, "err", err)
			return mcp.NewToolResultText(`{"ok":false,"output":""}`), nil
		}

		slog.Debug("mcpserver: call completed", "tool", toolName, "ok", result.OK, "stderr", result.Stderr)
		return mcp.NewToolResultText(formatResult(result.OK, result.Stdout)), nil
	}
}

func formatResult(ok bool, output string) string {
	return fmt.Sprintf(`{"ok":%t,"output":%q}`, ok, output)
}
