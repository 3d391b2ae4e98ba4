// Package anthropicmd parses Anthropic-style `*.agent.md` files: a YAML
// frontmatter header followed by a markdown body used as instructions.
package anthropicmd

import (
	"strings"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/parser"
)

type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Supports(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".agent.md")
}

type header struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Tools         any    `yaml:"tools"`
	Tags          any    `yaml:"tags"`
	Model         string `yaml:"model"`
	Provider      string `yaml:"provider"`
	ModelProvider string `yaml:"modelProvider"`
}

func (p *Parser) Parse(data []byte, path string) (agentconfig.AgentConfig, error) {
	var h header
	body, err := parser.Frontmatter(data, &h)
	if err != nil {
		return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, err.Error(), err)
	}

	if strings.TrimSpace(h.Name) == "" {
		return agentconfig.AgentConfig{}, agentconfig.NewParseError(path, "missing required field: name", nil)
	}

	cfg := agentconfig.AgentConfig{
		Name:         h.Name,
		Description:  h.Description,
		Instructions: body,
	}

	// tools: list or string; if string split on commas AND whitespace.
	for _, t := range parser.StringsFromAny(h.Tools, parser.SplitCommaOrWhitespace) {
		cfg.McpToolRefs = append(cfg.McpToolRefs, agentconfig.Bare(t))
	}

	// tags: list or string; if string split on commas ONLY so multi-word
	// tags survive.
	cfg.Tags = parser.StringsFromAny(h.Tags, parser.SplitCommaOnly)

	cfg.Run.Model = h.Model
	provider := h.Provider
	if provider == "" {
		provider = h.ModelProvider
	}
	cfg.Run.ModelProvider = provider

	return cfg, nil
}

var _ parser.Parser = (*Parser)(nil)
