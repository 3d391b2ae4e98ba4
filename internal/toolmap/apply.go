package toolmap

import "github.com/nikhil-pandey/switchboard/internal/agentconfig"

// Options configures Apply.
type Options struct {
	AllowCustomServers bool
}

// Result is what Apply hands back for the loader to merge.
type Result struct {
	Refs       []agentconfig.McpToolRef
	Toggles    agentconfig.AgentTogglePolicy
	SubServers map[string]agentconfig.NormalizedSubServer // origin = Mapping
}

// Apply rewrites cfg's McpToolRefs on a copy. Namespaced
// refs pass through unchanged. Bare refs are alias-resolved, then looked up;
// a Builtin destination sets a toggle, an McpTool destination becomes a
// Namespaced ref (and, if custom-server injection is allowed, contributes a
// NormalizedSubServer for the caller to merge). A miss keeps the ref as-is.
func Apply(cfg agentconfig.AgentConfig, provider agentconfig.ProviderID, mapping LoadedMapping, opts Options) Result {
	table := mapping.TableFor(provider)
	result := Result{SubServers: map[string]agentconfig.NormalizedSubServer{}}

	for _, ref := range cfg.McpToolRefs {
		if ref.Kind == agentconfig.RefNamespaced {
			result.Refs = append(result.Refs, ref)
			continue
		}

		tool := ref.Tool
		if canonical, ok := table.Aliases[tool]; ok {
			tool = canonical
		}

		dest, ok := table.Map[tool]
		if !ok {
			result.Refs = append(result.Refs, ref)
			continue
		}

		switch dest.Kind {
		case DestBuiltin:
			setToggle(&result.Toggles, dest.Builtin)
		case DestMcpTool:
			result.Refs = append(result.Refs, agentconfig.Namespaced(dest.ServerKey, dest.Tool))
			if opts.AllowCustomServers {
				result.SubServers[dest.ServerKey] = agentconfig.NormalizedSubServer{
					Key:     dest.ServerKey,
					Command: dest.Command,
					Args:    dest.Args,
					Env:     dest.Env,
					Origin:  agentconfig.SubServerOrigin{Provider: "mapping"},
				}
			}
		}
	}

	return result
}

func setToggle(p *agentconfig.AgentTogglePolicy, kind BuiltinKind) {
	t := true
	switch kind {
	case BuiltinPlan:
		p.Plan = &t
	case BuiltinApplyPatch:
		p.ApplyPatch = &t
	case BuiltinViewImage:
		p.ViewImage = &t
	case BuiltinWebSearch:
		p.WebSearch = &t
	case BuiltinTerminalAccess:
		// consumed silently; no AgentRun field.
	}
}
