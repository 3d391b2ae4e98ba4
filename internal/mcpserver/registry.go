// Package mcpserver exposes a registry of PreparedAgents as MCP tools,
// one tool per agent, each taking {task, cwd} and delegating
// execution to the driver adapter.
package mcpserver

import (
	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

// Registry is the immutable map<tool_name, PreparedAgent> the handler
// serves for the process lifetime.
type Registry struct {
	agents map[string]agentconfig.PreparedAgent
	order  []string
}

// NewRegistry builds an immutable registry from the loader's output. The
// insertion order is preserved so ListTools returns a stable order.
func NewRegistry(prepared []agentconfig.PreparedAgent) *Registry {
	r := &Registry{
		agents: make(map[string]agentconfig.PreparedAgent, len(prepared)),
		order:  make([]string, 0, len(prepared)),
	}
	for _, p := range prepared {
		r.agents[p.ToolName] = p
		r.order = append(r.order, p.ToolName)
	}
	return r
}

func (r *Registry) Get(toolName string) (agentconfig.PreparedAgent, bool) {
	p, ok := r.agents[toolName]
	return p, ok
}

func (r *Registry) List() []agentconfig.PreparedAgent {
	out := make([]agentconfig.PreparedAgent, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.agents[name])
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }
