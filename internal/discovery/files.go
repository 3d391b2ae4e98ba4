package discovery

import "encoding/json"

// stdioEntry is the JSON shape of one entry in any of the four mcpServers
// maps. HTTP/URL entries (no Command) are rejected by the caller.
type stdioEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
	URL     string            `json:"url"`
}

type mcpJSONFile struct {
	McpServers map[string]stdioEntry `json:"mcpServers"`
}

type claudeProjectEntry struct {
	McpServers             map[string]stdioEntry `json:"mcpServers"`
	EnabledMcpjsonServers  []string               `json:"enabledMcpjsonServers"`
	DisabledMcpjsonServers []string               `json:"disabledMcpjsonServers"`
}

type claudeUserFile struct {
	McpServers map[string]stdioEntry         `json:"mcpServers"`
	Projects   map[string]claudeProjectEntry `json:"projects"`
}

type vscodeMCPFile struct {
	Servers    map[string]stdioEntry `json:"servers"`
	McpServers map[string]stdioEntry `json:"mcpServers"`
}

func parseJSONFile[T any](data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}
