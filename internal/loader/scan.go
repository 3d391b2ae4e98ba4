// Package loader implements prepare_all: the orchestration step that
// turns configured agent directories into a registry of PreparedAgents.
package loader

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/naming"
	"github.com/nikhil-pandey/switchboard/internal/parser"
	"github.com/nikhil-pandey/switchboard/internal/parser/anthropicmd"
	"github.com/nikhil-pandey/switchboard/internal/parser/codextoml"
	"github.com/nikhil-pandey/switchboard/internal/parser/vscodemd"
)

// providerSpec binds a provider to its parser, scan directories, and tool
// name prefix.
type providerSpec struct {
	provider agentconfig.ProviderID
	parser   parser.Parser
	dirs     []string
	prefix   string
	enabled  bool
}

// scanAll walks each enabled provider's directories non-recursively,
// parsing every file its parser supports. Parse errors are logged and
// skipped; they never fail the whole scan.
func scanAll(specs []providerSpec) []agentconfig.ResolvedAgent {
	var out []agentconfig.ResolvedAgent
	for _, spec := range specs {
		if !spec.enabled {
			continue
		}
		for _, dir := range spec.dirs {
			out = append(out, scanDir(spec, dir)...)
		}
	}
	return out
}

func scanDir(spec providerSpec, dir string) []agentconfig.ResolvedAgent {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("loader: could not read agent dir", "dir", dir, "err", err)
		}
		return nil
	}

	var out []agentconfig.ResolvedAgent
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !spec.parser.Supports(path) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("loader: could not read agent file", "path", path, "err", err)
			continue
		}

		cfg, err := spec.parser.Parse(data, path)
		if err != nil {
			slog.Warn("loader: could not parse agent file", "path", path, "err", err)
			continue
		}

		out = append(out, agentconfig.ResolvedAgent{
			Source:   agentconfig.AgentSource{Provider: spec.provider, Path: path},
			Config:   cfg,
			ToolName: naming.ToolName(spec.prefix, cfg.Name),
		})
	}
	return out
}

// defaultParsers wires up the three shipped parsers.
func defaultParsers() (codex, anthropic, vscode parser.Parser) {
	return codextoml.New(), anthropicmd.New(), vscodemd.New()
}
