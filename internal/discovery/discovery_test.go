package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSelfSkip(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, ".mcp.json"), `{"mcpServers":{"switchboard":{"command":"switchboard-mcp"}}}`)

	result := Discover(Options{WorkspaceDir: ws, SkipSelf: true})
	assert.Empty(t, result)
}

func TestVSCodePrecedenceOverClaudeUser(t *testing.T) {
	ws := t.TempDir()
	home := t.TempDir()

	writeFile(t, filepath.Join(home, ".claude.json"), `{"mcpServers":{"memory":{"command":"A"}}}`)
	writeFile(t, filepath.Join(ws, ".vscode", "mcp.json"), `{"servers":{"memory":{"command":"B"}}}`)

	result := Discover(Options{WorkspaceDir: ws, Home: home})
	require.Contains(t, result, "memory")
	assert.Equal(t, "B", result["memory"].Command)
}

func TestHTTPEntriesRejected(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, ".mcp.json"), `{"mcpServers":{"remote":{"url":"https://example.com/mcp"}}}`)

	result := Discover(Options{WorkspaceDir: ws})
	assert.Empty(t, result)
}

func TestCursorFillsOnlyMissing(t *testing.T) {
	ws := t.TempDir()
	home := t.TempDir()

	writeFile(t, filepath.Join(ws, ".mcp.json"), `{"mcpServers":{"shared":{"command":"project-cmd"}}}`)
	writeFile(t, filepath.Join(home, ".cursor", "mcp.json"), `{"mcpServers":{"shared":{"command":"cursor-cmd"},"cursor-only":{"command":"cursor-cmd2"}}}`)

	result := Discover(Options{WorkspaceDir: ws, Home: home})
	assert.Equal(t, "project-cmd", result["shared"].Command)
	require.Contains(t, result, "cursor-only")
	assert.Equal(t, "cursor-cmd2", result["cursor-only"].Command)
}

func TestClaudeProjectScopedFiltering(t *testing.T) {
	ws := t.TempDir()
	home := t.TempDir()
	abs, err := filepath.Abs(ws)
	require.NoError(t, err)

	content := `{"projects":{"` + jsonEscape(abs) + `":{"mcpServers":{"a":{"command":"a-cmd"},"b":{"command":"b-cmd"}},"disabledMcpjsonServers":["b"]}}}`
	writeFile(t, filepath.Join(home, ".claude.json"), content)

	result := Discover(Options{WorkspaceDir: ws, Home: home})
	assert.Contains(t, result, "a")
	assert.NotContains(t, result, "b")
}

func TestClaudeUserOverwritesMcpJSONOnCollision(t *testing.T) {
	ws := t.TempDir()
	home := t.TempDir()

	writeFile(t, filepath.Join(ws, ".mcp.json"), `{"mcpServers":{"memory":{"command":"project-cmd"}}}`)
	writeFile(t, filepath.Join(home, ".claude.json"), `{"mcpServers":{"memory":{"command":"claude-user-cmd"}}}`)

	result := Discover(Options{WorkspaceDir: ws, Home: home})
	require.Contains(t, result, "memory")
	assert.Equal(t, "claude-user-cmd", result["memory"].Command)
}

func TestClaudeUserProjectScopedOverwritesMcpJSONOnCollision(t *testing.T) {
	ws := t.TempDir()
	home := t.TempDir()
	abs, err := filepath.Abs(ws)
	require.NoError(t, err)

	writeFile(t, filepath.Join(ws, ".mcp.json"), `{"mcpServers":{"memory":{"command":"project-cmd"}}}`)
	content := `{"projects":{"` + jsonEscape(abs) + `":{"mcpServers":{"memory":{"command":"claude-scoped-cmd"}}}}}`
	writeFile(t, filepath.Join(home, ".claude.json"), content)

	result := Discover(Options{WorkspaceDir: ws, Home: home})
	require.Contains(t, result, "memory")
	assert.Equal(t, "claude-scoped-cmd", result["memory"].Command)
}

func TestClaudeUserEnabledListIsCaseInsensitive(t *testing.T) {
	ws := t.TempDir()
	home := t.TempDir()
	abs, err := filepath.Abs(ws)
	require.NoError(t, err)

	content := `{"projects":{"` + jsonEscape(abs) + `":{"mcpServers":{"Memory":{"command":"a-cmd"}},"enabledMcpjsonServers":["memory"]}}}`
	writeFile(t, filepath.Join(home, ".claude.json"), content)

	result := Discover(Options{WorkspaceDir: ws, Home: home})
	assert.Contains(t, result, "Memory")
}

func jsonEscape(s string) string {
	out := ""
	for _, r := range s {
		if r == '\\' {
			out += `\\`
		} else {
			out += string(r)
		}
	}
	return out
}
