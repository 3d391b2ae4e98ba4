package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/driver/refdriver"
)

func newCallToolRequest(t *testing.T, name string, args map[string]any) mcp.CallToolRequest {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestRegistryListPreservesOrder(t *testing.T) {
	r := NewRegistry([]agentconfig.PreparedAgent{
		{ToolName: "b"},
		{ToolName: "a"},
	})
	names := []string{}
	for _, p := range r.List() {
		names = append(names, p.ToolName)
	}
	assert.Equal(t, []string{"b", "a"}, names)
	assert.Equal(t, 2, r.Len())
}

func TestToolDefinitionIncludesTags(t *testing.T) {
	tool := toolDefinition("helper", "does things", []string{"ops", "infra"})
	assert.Contains(t, tool.Description, "does things")
	assert.Contains(t, tool.Description, "tags: ops, infra")
}

func TestCallToolHandlerRejectsNonAbsoluteCwd(t *testing.T) {
	registry := NewRegistry([]agentconfig.PreparedAgent{{ToolName: "helper", Name: "Helper"}})
	h := NewHandler(registry, refdriver.New())
	handler := h.callToolHandler("helper")

	req := newCallToolRequest(t, "helper", map[string]any{"task": "do it", "cwd": "relative"})
	result, err := handler(context.Background(), req)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCallToolHandlerRejectsMissingTask(t *testing.T) {
	registry := NewRegistry([]agentconfig.PreparedAgent{{ToolName: "helper", Name: "Helper"}})
	h := NewHandler(registry, refdriver.New())
	handler := h.callToolHandler("helper")

	req := newCallToolRequest(t, "helper", map[string]any{"cwd": "/tmp/work"})
	result, err := handler(context.Background(), req)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCallToolHandlerRejectsMissingCwd(t *testing.T) {
	registry := NewRegistry([]agentconfig.PreparedAgent{{ToolName: "helper", Name: "Helper"}})
	h := NewHandler(registry, refdriver.New())
	handler := h.callToolHandler("helper")

	req := newCallToolRequest(t, "helper", map[string]any{"task": "do it"})
	result, err := handler(context.Background(), req)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCallToolHandlerSucceeds(t *testing.T) {
	registry := NewRegistry([]agentconfig.PreparedAgent{{ToolName: "helper", Name: "Helper"}})
	h := NewHandler(registry, refdriver.New())
	handler := h.callToolHandler("helper")

	req := newCallToolRequest(t, "helper", map[string]any{"task": "do it", "cwd": "/tmp/work"})
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
}
