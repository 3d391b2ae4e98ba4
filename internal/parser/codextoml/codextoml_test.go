package codextoml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	data := []byte(`
name = "Deep Research"
description = "digs through sources"
tags = "deep research, demo"
tools = ["plan", "apply-patch", "Bash"]

[run]
model = "gpt-5"
model_provider = "openai"
`)
	p := New()
	cfg, err := p.Parse(data, "/tmp/deep_research.toml")
	require.NoError(t, err)
	assert.Equal(t, "Deep Research", cfg.Name)
	assert.Equal(t, []string{"deep", "research", "demo"}, cfg.Tags)
	assert.True(t, cfg.Run.Toggles.Plan)
	assert.True(t, cfg.Run.Toggles.ApplyPatch)
	assert.False(t, cfg.Run.Toggles.WebSearch)
	assert.Equal(t, "gpt-5", cfg.Run.Model)
}

func TestParseMissingName(t *testing.T) {
	p := New()
	_, err := p.Parse([]byte(`description = "no name"`), "x.toml")
	require.Error(t, err)
}

func TestParseEmptyFile(t *testing.T) {
	p := New()
	_, err := p.Parse(nil, "x.toml")
	require.Error(t, err)
}

func TestParseSiblingPrompt(t *testing.T) {
	dir := t.TempDir()
	agentPath := filepath.Join(dir, "agent.toml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agent.prompt.md"), []byte("be helpful"), 0o644))

	p := New()
	cfg, err := p.Parse([]byte(`name = "Agent"`), agentPath)
	require.NoError(t, err)
	assert.Equal(t, "be helpful", cfg.Instructions)
}

func TestSupports(t *testing.T) {
	p := New()
	assert.True(t, p.Supports("foo.toml"))
	assert.False(t, p.Supports("foo.agent.md"))
}
