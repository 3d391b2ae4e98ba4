package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/settings"
)

func TestDedupeToolNames(t *testing.T) {
	got := dedupeToolNames([]string{"a", "b", "a", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "a_2", "a_3", "c", "b_2"}, got)
}

func TestMatchesFilterEmptyMeansAll(t *testing.T) {
	assert.True(t, matchesFilter(agentconfig.AgentConfig{Name: "anything"}, nil))
}

func TestMatchesFilterByTagCaseInsensitive(t *testing.T) {
	cfg := agentconfig.AgentConfig{Name: "Researcher", Tags: []string{"Research", "Ops"}}
	assert.True(t, matchesFilter(cfg, parseFilter("research")))
	assert.False(t, matchesFilter(cfg, parseFilter("billing")))
}

func TestScanDirSkipsParseErrorsAndUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.toml"), []byte(`name = "helper"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"), []byte(``), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte(`not an agent`), 0o644))

	codexParser, _, _ := defaultParsers()
	spec := providerSpec{provider: agentconfig.ProviderCodex, parser: codexParser, prefix: "", enabled: true}
	got := scanDir(spec, dir)
	require.Len(t, got, 1)
	assert.Equal(t, "helper", got[0].Config.Name)
}

func TestPrepareAllEndToEnd(t *testing.T) {
	workspace := t.TempDir()
	home := t.TempDir()
	codexDir := filepath.Join(workspace, ".agents")
	require.NoError(t, os.MkdirAll(codexDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(codexDir, "helper.toml"), []byte(`
name = "Helper"
description = "does things"
tags = "ops, infra"
instructions = "Be helpful."

[run]
model = "sonnet"
`), 0o644))

	s := settings.Defaults(workspace, home)
	s.Agents.EnableAnthropic = false
	s.Agents.EnableVSCode = false
	s.Agents.CodexDirs = []string{codexDir}
	s.Agents.MCPDiscovery = false

	prepared := PrepareAll(context.Background(), s)
	require.Len(t, prepared, 1)
	assert.Equal(t, "helper", prepared[0].ToolName)
	assert.Equal(t, "Be helpful.", prepared[0].Instructions)
	assert.Equal(t, "claude-3-5-sonnet-latest", prepared[0].Run.Model)
	assert.Equal(t, "anthropic", prepared[0].Run.ModelProvider)
}

func TestPrepareAllFilterDropsNonMatching(t *testing.T) {
	workspace := t.TempDir()
	home := t.TempDir()
	codexDir := filepath.Join(workspace, ".agents")
	require.NoError(t, os.MkdirAll(codexDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(codexDir, "helper.toml"), []byte(`name = "Helper"`), 0o644))

	s := settings.Defaults(workspace, home)
	s.Agents.EnableAnthropic = false
	s.Agents.EnableVSCode = false
	s.Agents.CodexDirs = []string{codexDir}
	s.Agents.MCPDiscovery = false
	s.Agents.Filter = "nonexistent-tag"

	prepared := PrepareAll(context.Background(), s)
	assert.Empty(t, prepared)
}
