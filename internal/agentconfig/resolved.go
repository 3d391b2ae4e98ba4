package agentconfig

// SubServerOrigin records which source produced a NormalizedSubServer, for
// debug logging.
type SubServerOrigin struct {
	Provider string // "claude-project", "claude-user-global", "claude-user-project", "vscode", "cursor", "mapping", "embedded"
	Path     string
	Note     string
}

// NormalizedSubServer is a stdio-transport sub-server definition, already
// normalized from whichever discovery source produced it.
type NormalizedSubServer struct {
	Key     string
	Command string
	Args    []string
	Env     map[string]string
	Origin  SubServerOrigin
}

// ResolvedAgent is the mutable, in-progress record the loader builds up
// while running parsers, discovery, mapping, and enumeration. It is
// discarded once a PreparedAgent is materialized.
type ResolvedAgent struct {
	Source     AgentSource
	Config     AgentConfig
	ToolName   string
	SubServers map[string]NormalizedSubServer
}

// PreparedAgent is the immutable record the MCP handler registry holds for
// the lifetime of the process.
type PreparedAgent struct {
	ToolName     string
	Name         string
	Description  string
	Tags         []string
	Provider     ProviderID
	SubServers   map[string]NormalizedSubServer
	Instructions string // "" means absent; never whitespace-only
	Run          AgentRun
}
