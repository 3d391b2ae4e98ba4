package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsPopulatesScanDirs(t *testing.T) {
	s := Defaults("/work", "/home/u")
	assert.Equal(t, []string{"/work/.agents", "/home/u/.switchboard/agents", "/home/u/.agents"}, s.Agents.CodexDirs)
	assert.Equal(t, "stdio", s.Transport.Transport)
}

func TestApplyEnvOverridesDefaults(t *testing.T) {
	s := Defaults("/work", "/home/u")
	t.Setenv("AGENTS_ENABLE_CODEX", "false")
	t.Setenv("AGENTS_MCP_ENUM_TIMEOUT_MS", "9000")
	t.Setenv("AGENTS_MCP_ENUM_FALLBACK", "all")
	t.Setenv("TRANSPORT", "http")
	s.ApplyEnv()
	assert.False(t, s.Agents.EnableCodex)
	assert.Equal(t, 9000, s.Agents.EnumTimeoutMS)
	assert.True(t, s.Agents.EnumFallbackAll)
	assert.Equal(t, "http", s.Transport.Transport)
}

func TestApplyFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
to_file = true
level = "debug"

[agents]
enable_vscode = false
filter = "research,ops"
`), 0o644))

	s := Defaults("/work", "/home/u")
	s.ApplyFile(path)
	assert.True(t, s.Logging.ToFile)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.False(t, s.Agents.EnableVSCode)
	assert.Equal(t, "research,ops", s.Agents.Filter)
}

func TestApplyFileMissingIsNotError(t *testing.T) {
	s := Defaults("/work", "/home/u")
	before := s
	s.ApplyFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Equal(t, before, s)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u/.agents", ExpandHome("~/.agents", "/home/u"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path", "/home/u"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path", ""))
}
