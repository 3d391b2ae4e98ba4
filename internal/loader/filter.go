package loader

import (
	"strings"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/naming"
	"github.com/nikhil-pandey/switchboard/internal/parser"
)

// parseFilter splits a comma/whitespace-separated allow-list into lowercase
// terms. An empty filter means "no filtering" (caller checks len == 0).
func parseFilter(raw string) []string {
	terms := parser.SplitCommaOrWhitespace(raw)
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, strings.ToLower(t))
	}
	return out
}

// matchesFilter reports whether agent matches any term, case-insensitively,
// against its name, safe_name, or any tag.
func matchesFilter(cfg agentconfig.AgentConfig, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	candidates := []string{strings.ToLower(cfg.Name), naming.SafeName(cfg.Name)}
	for _, tag := range cfg.Tags {
		candidates = append(candidates, strings.ToLower(tag))
	}
	for _, term := range terms {
		for _, c := range candidates {
			if c == term {
				return true
			}
		}
	}
	return false
}
