// Package vscodemd parses VSCode-style `*.chatmode.md` files. Unlike the
// Anthropic variant, `name` is optional (it defaults to the filename stem)
// and `tools` entries containing `::` are namespaced references.
package vscodemd

import (
	"path/filepath"
	"strings"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/parser"
)

type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Supports(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".chatmode.md")
}

type header struct {
	Name     string `yaml:"name"`
	Desc     string `yaml:"description"`
	Tools    any    `yaml:"tools"`
	Model    string `yaml:"model"`
	Provider string `yaml:"provider"`
}

func (p *Parser) Parse(data []byte, path string) (agentconfig.AgentConfig, error) {
	var h header
	body, err := parser.Frontmatter(data, &h)
	if err != nil {
		return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, err.Error(), err)
	}

	if strings.TrimSpace(h.Desc) == "" {
		return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, "missing required field: description", nil)
	}

	name := h.Name
	if strings.TrimSpace(name) == "" {
		name = stemName(path)
	}

	cfg := agentconfig.AgentConfig{
		Name:         name,
		Description:  h.Desc,
		Instructions: body,
	}

	for _, t := range parser.StringsFromAny(h.Tools, parser.SplitCommaOrWhitespace) {
		if idx := strings.Index(t, "::"); idx >= 0 {
			cfg.McpToolRefs = append(cfg.McpToolRefs, agentconfig.Namespaced(t[:idx], t[idx+2:]))
		} else {
			cfg.McpToolRefs = append(cfg.McpToolRefs, agentconfig.Bare(t))
		}
	}

	cfg.Run.Model = h.Model
	cfg.Run.ModelProvider = h.Provider

	return cfg, nil
}

// stemName strips the directory and the trailing ".chatmode.md" extension.
func stemName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base)) // strip .md
	base = strings.TrimSuffix(base, ".chatmode")
	return base
}

var _ parser.Parser = (*Parser)(nil)
