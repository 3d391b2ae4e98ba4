package loader

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/enumerator"
)

// EnumOptions configures the enumeration-gated sub-server attachment mode.
type EnumOptions struct {
	Enabled     bool
	TimeoutMS   int
	MaxServers  int
	Strict      bool
	FallbackAll bool
}

// attachSubServers attaches discovered sub-servers to each agent, gated
// either by static reference analysis or by live enumeration.
func attachSubServers(ctx context.Context, agents []agentconfig.ResolvedAgent, discovered map[string]agentconfig.NormalizedSubServer, limitToReferenced bool, enumOpts EnumOptions) {
	if enumOpts.Enabled {
		attachWithEnumeration(ctx, agents, discovered, limitToReferenced, enumOpts)
		return
	}
	attachWithoutEnumeration(agents, discovered, limitToReferenced)
}

func attachWithoutEnumeration(agents []agentconfig.ResolvedAgent, discovered map[string]agentconfig.NormalizedSubServer, limitToReferenced bool) {
	for i := range agents {
		agent := &agents[i]
		if !limitToReferenced {
			agent.SubServers = cloneServers(discovered, allKeys(discovered))
			continue
		}

		hasBare := false
		keys := map[string]struct{}{}
		for _, ref := range agent.Config.McpToolRefs {
			switch ref.Kind {
			case agentconfig.RefNamespaced:
				keys[ref.ServerKey] = struct{}{}
			case agentconfig.RefBare:
				hasBare = true
			}
		}
		if hasBare {
			agent.SubServers = cloneServers(discovered, allKeys(discovered))
			continue
		}
		agent.SubServers = cloneServers(discovered, keys)
	}
}

func attachWithEnumeration(ctx context.Context, agents []agentconfig.ResolvedAgent, discovered map[string]agentconfig.NormalizedSubServer, limitToReferenced bool, opts EnumOptions) {
	namespacedKeys := map[string]struct{}{}
	anyBare := false
	for _, agent := range agents {
		for _, ref := range agent.Config.McpToolRefs {
			switch ref.Kind {
			case agentconfig.RefNamespaced:
				namespacedKeys[ref.ServerKey] = struct{}{}
			case agentconfig.RefBare:
				anyBare = true
			}
		}
	}

	candidates := map[string]struct{}{}
	for k := range namespacedKeys {
		if _, ok := discovered[k]; ok {
			candidates[k] = struct{}{}
		}
	}
	if anyBare {
		for k := range discovered {
			candidates[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(candidates))
	for k := range candidates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if opts.MaxServers > 0 && len(keys) > opts.MaxServers {
		keys = keys[:opts.MaxServers]
	}

	inventory := enumerateAll(ctx, discovered, keys, time.Duration(opts.TimeoutMS)*time.Millisecond, opts.Strict, opts.MaxServers)

	for i := range agents {
		agent := &agents[i]
		selection := map[string]struct{}{}
		for _, ref := range agent.Config.McpToolRefs {
			switch ref.Kind {
			case agentconfig.RefNamespaced:
				if tools, ok := inventory[ref.ServerKey]; ok {
					if _, has := tools[ref.Tool]; has {
						selection[ref.ServerKey] = struct{}{}
					}
				}
			case agentconfig.RefBare:
				matches := matchingServers(inventory, ref.Tool)
				switch len(matches) {
				case 0:
					slog.Warn("loader: bare tool ref matched no enumerated server", "tool", ref.Tool, "agent", agent.ToolName)
				case 1:
					selection[matches[0]] = struct{}{}
				default:
					if opts.FallbackAll {
						for _, k := range matches {
							selection[k] = struct{}{}
						}
					} else {
						slog.Warn("loader: bare tool ref matched multiple servers, dropping", "tool", ref.Tool, "agent", agent.ToolName, "servers", matches)
					}
				}
			}
		}

		if len(selection) == 0 && !limitToReferenced {
			for k := range inventory {
				selection[k] = struct{}{}
			}
		}

		agent.SubServers = cloneServers(discovered, selection)
	}
}

func enumerateAll(ctx context.Context, discovered map[string]agentconfig.NormalizedSubServer, keys []string, timeout time.Duration, strict bool, concurrency int) map[string]map[string]struct{} {
	inventory := map[string]map[string]struct{}{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for _, key := range keys {
		srv := discovered[key]
		g.Go(func() error {
			inv, err := enumerator.Enumerate(gctx, srv, timeout)
			if err != nil {
				if strict {
					slog.Warn("loader: enumeration failed, dropping server", "key", srv.Key, "err", err)
				} else {
					slog.Debug("loader: enumeration failed, dropping server", "key", srv.Key, "err", err)
				}
				return nil
			}
			mu.Lock()
			inventory[inv.Key] = inv.Tools
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return inventory
}

func matchingServers(inventory map[string]map[string]struct{}, tool string) []string {
	var out []string
	for k, tools := range inventory {
		if _, ok := tools[tool]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func allKeys(m map[string]agentconfig.NormalizedSubServer) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

func cloneServers(discovered map[string]agentconfig.NormalizedSubServer, keys map[string]struct{}) map[string]agentconfig.NormalizedSubServer {
	out := make(map[string]agentconfig.NormalizedSubServer, len(keys))
	for k := range keys {
		if srv, ok := discovered[k]; ok {
			out[k] = srv
		}
	}
	return out
}
