// Package toolmap rewrites provider-specific bare tool references into
// built-in capability toggles or namespaced sub-server references.
package toolmap

import "github.com/nikhil-pandey/switchboard/internal/agentconfig"

// DestKind tags the two MappingDest variants.
type DestKind int

const (
	DestBuiltin DestKind = iota
	DestMcpTool
)

// BuiltinKind enumerates the capability toggles a Builtin destination can
// set. TerminalAccess has no corresponding AgentRun field: it is consumed
// silently.
type BuiltinKind int

const (
	BuiltinPlan BuiltinKind = iota
	BuiltinApplyPatch
	BuiltinViewImage
	BuiltinWebSearch
	BuiltinTerminalAccess
)

// MappingDest is the tagged variant callers must switch on exhaustively.
type MappingDest struct {
	Kind    DestKind
	Builtin BuiltinKind // valid when Kind == DestBuiltin

	// valid when Kind == DestMcpTool
	ServerKey string
	Tool      string
	Command   string
	Args      []string
	Env       map[string]string
}

func Builtin(kind BuiltinKind) MappingDest {
	return MappingDest{Kind: DestBuiltin, Builtin: kind}
}

func McpTool(serverKey, tool, command string, args []string, env map[string]string) MappingDest {
	return MappingDest{Kind: DestMcpTool, ServerKey: serverKey, Tool: tool, Command: command, Args: args, Env: env}
}

// Table is one provider's bare-tool lookup: alias resolution followed by a
// destination lookup.
type Table struct {
	Aliases map[string]string // case-sensitive
	Map     map[string]MappingDest
}

// LoadedMapping holds the two non-Codex provider tables. Codex agents reuse
// the Anthropic table deliberately; it is not separately configurable.
type LoadedMapping struct {
	Anthropic Table
	VSCode    Table
}

// TableFor returns the table to use for a given provider.
func (m LoadedMapping) TableFor(p agentconfig.ProviderID) Table {
	switch p {
	case agentconfig.ProviderVSCode:
		return m.VSCode
	default: // Codex and Anthropic share the Anthropic table.
		return m.Anthropic
	}
}
