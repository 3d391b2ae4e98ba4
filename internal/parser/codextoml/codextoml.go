// Package codextoml parses Codex-style agent definitions: TOML files with a
// required top-level `name`, an optional `[run]` table, and an optional
// `tools` list that is folded into capability toggles.
package codextoml

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/parser"
)

// Parser parses Codex `*.toml` agent definitions.
type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// toggleNames maps every literal tools entry (case-insensitive, hyphen or
// underscore) to the toggle it sets. Anything else is ignored with a debug
// note rather than an error.
var toggleNames = map[string]string{
	"plan":        "plan",
	"apply_patch": "apply_patch",
	"apply-patch": "apply_patch",
	"view_image":  "view_image",
	"view-image":  "view_image",
	"web_search":  "web_search",
	"web-search":  "web_search",
}

func (p *Parser) Parse(data []byte, path string) (agentconfig.AgentConfig, error) {
	if len(data) == 0 {
		return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, "empty file", nil)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, "malformed TOML", err)
	}

	name, _ := raw["name"].(string)
	if strings.TrimSpace(name) == "" {
		return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, "missing required field: name", nil)
	}

	cfg := agentconfig.AgentConfig{Name: name}
	cfg.Description, _ = raw["description"].(string)
	cfg.Tags = parser.StringsFromAny(raw["tags"], parser.SplitCommaOrWhitespace)

	if inline, ok := raw["instructions"].(string); ok && inline != "" {
		cfg.Instructions = inline
	}
	if instrFile, ok := raw["instructions_file"].(string); ok && instrFile != "" {
		cfg.InstructionsFile = instrFile
	}

	if cfg.Instructions == "" && cfg.InstructionsFile == "" {
		cfg.Instructions = readSiblingPrompt(path)
	}

	if runRaw, ok := raw["run"].(map[string]any); ok {
		if err := mapstructure.Decode(runRaw, &cfg.Run); err != nil {
			return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, "malformed [run] table", err)
		}
	}

	if mcpRaw, ok := raw["mcp_servers"].(map[string]any); ok {
		cfg.McpServers = mcpRaw
	}

	policy := agentconfig.AgentTogglePolicy{}
	for _, tool := range parser.StringsFromAny(raw["tools"], parser.SplitCommaOrWhitespace) {
		key, known := toggleNames[strings.ToLower(tool)]
		if !known {
			slog.Debug("codex agent: unknown tool entry ignored", "path", path, "tool", tool)
			continue
		}
		setToggle(&policy, key)
	}
	cfg.Run.ApplyTogglePolicy(policy)

	for key := range raw {
		switch key {
		case "name", "description", "tags", "instructions", "instructions_file", "run", "mcp_servers", "tools":
		default:
			slog.Debug("codex agent: unknown top-level key ignored", "path", path, "key", key)
		}
	}

	return cfg, nil
}

func setToggle(p *agentconfig.AgentTogglePolicy, key string) {
	t := true
	switch key {
	case "plan":
		p.Plan = &t
	case "apply_patch":
		p.ApplyPatch = &t
	case "view_image":
		p.ViewImage = &t
	case "web_search":
		p.WebSearch = &t
	}
}

// readSiblingPrompt best-effort reads <stem>.prompt.md next to the agent
// file. Any failure is non-fatal and yields an empty string.
func readSiblingPrompt(path string) string {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	data, err := os.ReadFile(stem + ".prompt.md")
	if err != nil {
		return ""
	}
	return string(data)
}

var _ parser.Parser = (*Parser)(nil)
