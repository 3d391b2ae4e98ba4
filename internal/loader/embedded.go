package loader

import (
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

// embeddedServer is the stdio shape an agent file's own `mcp_servers` table
// may carry, decoded generically since its source key names vary by
// provider (e.g. Codex's `command`/`args`/`env`).
type embeddedServer struct {
	Command string            `mapstructure:"command"`
	Args    []string          `mapstructure:"args"`
	Env     map[string]string `mapstructure:"env"`
}

// mergeEmbeddedServers merges an agent's own embedded mcp_servers table
// over its attached sub-servers; on key collision the embedded entry wins
// when the same key is also discovered from a host config file.
func mergeEmbeddedServers(attached map[string]agentconfig.NormalizedSubServer, embedded map[string]any) map[string]agentconfig.NormalizedSubServer {
	if len(embedded) == 0 {
		return attached
	}

	out := make(map[string]agentconfig.NormalizedSubServer, len(attached)+len(embedded))
	for k, v := range attached {
		out[k] = v
	}

	for key, raw := range embedded {
		var es embeddedServer
		if err := mapstructure.Decode(raw, &es); err != nil {
			slog.Warn("loader: could not decode embedded mcp_servers entry", "key", key, "err", err)
			continue
		}
		if es.Command == "" {
			continue
		}
		out[key] = agentconfig.NormalizedSubServer{
			Key:     key,
			Command: es.Command,
			Args:    es.Args,
			Env:     es.Env,
			Origin:  agentconfig.SubServerOrigin{Provider: "embedded"},
		}
	}
	return out
}
