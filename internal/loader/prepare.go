package loader

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/discovery"
	"github.com/nikhil-pandey/switchboard/internal/modelmap"
	"github.com/nikhil-pandey/switchboard/internal/settings"
	"github.com/nikhil-pandey/switchboard/internal/toolmap"
)

// PrepareAll is the loader's single entry point: it
// scans, dedupes, discovers, maps, attaches, filters, and materializes the
// registry the MCP handler will serve for the life of the process.
func PrepareAll(ctx context.Context, s settings.Settings) []agentconfig.PreparedAgent {
	codexParser, anthropicParser, vscodeParser := defaultParsers()

	specs := []providerSpec{
		{provider: agentconfig.ProviderCodex, parser: codexParser, dirs: s.Agents.CodexDirs, prefix: s.Agents.PrefixCodex, enabled: s.Agents.EnableCodex},
		{provider: agentconfig.ProviderAnthropic, parser: anthropicParser, dirs: s.Agents.AnthropicDirs, prefix: s.Agents.PrefixAnthropic, enabled: s.Agents.EnableAnthropic},
		{provider: agentconfig.ProviderVSCode, parser: vscodeParser, dirs: s.Agents.VSCodeDirs, prefix: s.Agents.PrefixVSCode, enabled: s.Agents.EnableVSCode},
	}

	// Step 1: scan.
	agents := scanAll(specs)

	// Step 2: dedupe tool names, stable under input order.
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.ToolName
	}
	deduped := dedupeToolNames(names)
	for i := range agents {
		if deduped[i] != names[i] {
			slog.Info("loader: renamed tool (tool name collision)", "from", names[i], "to", deduped[i])
		}
		agents[i].ToolName = deduped[i]
	}

	// Step 3: discover sub-servers, self-filtered.
	discovered := map[string]agentconfig.NormalizedSubServer{}
	if s.Agents.MCPDiscovery {
		home, _ := os.UserHomeDir()
		discovered = discovery.Discover(discovery.Options{
			WorkspaceDir: s.WorkspaceDir,
			Home:         home,
			SkipSelf:     s.SkipSelf,
		})
	}

	// Step 4: tool mapping.
	if s.Agents.ToolmapEnable {
		mapping := toolmap.DefaultMapping()
		mapOpts := toolmap.Options{AllowCustomServers: s.Agents.ToolmapAllowCustomServers}
		for i := range agents {
			result := toolmap.Apply(agents[i].Config, agents[i].Source.Provider, mapping, mapOpts)
			agents[i].Config.McpToolRefs = result.Refs
			agents[i].Config.Run.ApplyTogglePolicy(result.Toggles)
			for key, srv := range result.SubServers {
				if _, exists := discovered[key]; !exists {
					discovered[key] = srv
				}
			}
		}
	}

	// Step 5: load model map.
	models := loadModelMap(s)

	// Step 6: sub-server attachment.
	attachSubServers(ctx, agents, discovered, s.Agents.LimitMCPToReferenced, EnumOptions{
		Enabled:     s.Agents.Enumerate,
		TimeoutMS:   s.Agents.EnumTimeoutMS,
		MaxServers:  s.Agents.EnumMaxServers,
		Strict:      s.Agents.EnumStrict,
		FallbackAll: s.Agents.EnumFallbackAll,
	})

	// Step 7: allow-list filter.
	terms := parseFilter(s.Agents.Filter)
	survivors := agents[:0]
	for _, a := range agents {
		if matchesFilter(a.Config, terms) {
			survivors = append(survivors, a)
		}
	}
	agents = survivors

	// Step 8: model mapping per survivor.
	if s.Agents.ModelMapEnable {
		for i := range agents {
			modelmap.Apply(&agents[i].Config.Run, models, modelmap.ApplyOptions{
				NormalizeProvider: s.Agents.ModelMapNormalizeProvider,
				OverrideProvider:  s.Agents.ModelMapOverrideProvider,
				Strict:            s.Agents.ModelMapStrict,
			})
		}
	}

	// Step 9 + 10: materialize and log.
	prepared := make([]agentconfig.PreparedAgent, 0, len(agents))
	for _, a := range agents {
		p := materialize(a)
		prepared = append(prepared, p)
		slog.Info("loader: prepared agent",
			"tool_name", p.ToolName,
			"provider", p.Provider.String(),
			"sub_servers", len(p.SubServers),
			"has_instructions", p.Instructions != "",
		)
	}

	return prepared
}

func loadModelMap(s settings.Settings) modelmap.ModelMap {
	defaults := modelmap.DefaultModelMap()
	if !s.Agents.ModelMapEnable {
		return defaults
	}

	explicit := s.Agents.ModelMapFile != "" && s.Agents.ModelMapFile != defaultModelMapPath(s)
	loaded, err := modelmap.LoadFile(s.Agents.ModelMapFile)
	if err != nil {
		if explicit {
			slog.Warn("loader: could not load model map file", "path", s.Agents.ModelMapFile, "err", err)
		}
		return defaults
	}
	return modelmap.Merge(defaults, loaded)
}

func defaultModelMapPath(s settings.Settings) string {
	return s.WorkspaceDir + "/.agents/model-map.toml"
}

// materialize builds the immutable PreparedAgent from a fully resolved
// ResolvedAgent.
func materialize(a agentconfig.ResolvedAgent) agentconfig.PreparedAgent {
	instructions := resolveInstructions(a.Config)

	subServers := mergeEmbeddedServers(a.SubServers, a.Config.McpServers)

	return agentconfig.PreparedAgent{
		ToolName:     a.ToolName,
		Name:         a.Config.Name,
		Description:  a.Config.Description,
		Tags:         a.Config.Tags,
		Provider:     a.Source.Provider,
		SubServers:   subServers,
		Instructions: instructions,
		Run:          a.Config.Run,
	}
}

// resolveInstructions prefers instructions_file (if present and non-empty
// after trim) over the inline instructions field.
func resolveInstructions(cfg agentconfig.AgentConfig) string {
	if cfg.InstructionsFile != "" {
		data, err := os.ReadFile(cfg.InstructionsFile)
		if err == nil {
			if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
				return trimmed
			}
		} else {
			slog.Warn("loader: could not read instructions_file", "path", cfg.InstructionsFile, "err", err)
		}
	}
	return cfg.NonWhitespaceInstructions()
}
