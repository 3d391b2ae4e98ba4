// Package discovery scans the four well-known MCP host config files and
// normalizes their stdio sub-server definitions into a single keyed map,
// following a fixed precedence chain across scopes.
package discovery

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

// Options configures a discovery scan.
type Options struct {
	WorkspaceDir string
	Home         string // expands "~/"; if empty, $HOME is used, and if that is unset too, "~/" paths are left unchanged
	SkipSelf     bool
}

const (
	originClaudeProject = "claude-project"
	originClaudeUser    = "claude-user-global"
	originClaudeScoped  = "claude-user-project"
	originVSCode        = "vscode"
	originCursor        = "cursor"
)

// merged tracks, alongside the normalized entry, which source produced it so
// later merge steps can apply the right insert-vs-overwrite rule.
type merged struct {
	entry  agentconfig.NormalizedSubServer
	origin string
}

// Discover reads the four config files (best-effort; missing or unreadable
// files are silently skipped) and returns the merged, self-filtered map.
func Discover(opts Options) map[string]agentconfig.NormalizedSubServer {
	m := map[string]merged{}

	mergeMCPJSON(m, filepath.Join(opts.WorkspaceDir, ".mcp.json"), originClaudeProject, overwrite)
	mergeClaudeUser(m, expandHome("~/.claude.json", opts.Home), opts.WorkspaceDir)
	mergeVSCode(m, filepath.Join(opts.WorkspaceDir, ".vscode", "mcp.json"))
	mergeMCPJSON(m, expandHome("~/.cursor/mcp.json", opts.Home), originCursor, insertIfAbsent)

	out := make(map[string]agentconfig.NormalizedSubServer, len(m))
	for k, v := range m {
		out[k] = v.entry
	}

	if opts.SkipSelf {
		selfFilter(out)
	}

	return out
}

type mergeRule func(m map[string]merged, key string, v merged)

func overwrite(m map[string]merged, key string, v merged) { m[key] = v }

func insertIfAbsent(m map[string]merged, key string, v merged) {
	if _, exists := m[key]; !exists {
		m[key] = v
	}
}

func readFile(path string) ([]byte, bool) {
	if path == "" {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("discovery: skipping unreadable config file", "path", path, "error", err)
		}
		return nil, false
	}
	return data, true
}

func mergeMCPJSON(m map[string]merged, path, origin string, rule mergeRule) {
	data, ok := readFile(path)
	if !ok {
		return
	}
	file, err := parseJSONFile[mcpJSONFile](data)
	if err != nil {
		slog.Warn("discovery: malformed config file", "path", path, "error", err)
		return
	}
	for key, entry := range file.McpServers {
		norm, ok := normalize(key, entry, origin, path)
		if !ok {
			continue
		}
		rule(m, key, merged{entry: norm, origin: origin})
	}
}

// mergeClaudeUser merges ~/.claude.json's project-scoped and global
// mcpServers blocks into a local map of their own first (project-scoped via
// plain insert, global via insert-only-if-absent, so project-scoped entries
// win over global ones within this file), then unconditionally overwrites that local
// result onto m — including any entry .mcp.json already placed there.
func mergeClaudeUser(m map[string]merged, path, workspaceDir string) {
	data, ok := readFile(path)
	if !ok {
		return
	}
	file, err := parseJSONFile[claudeUserFile](data)
	if err != nil {
		slog.Warn("discovery: malformed config file", "path", path, "error", err)
		return
	}

	local := map[string]merged{}

	canonical := canonicalWorkspacePath(workspaceDir)
	if project, ok := file.Projects[canonical]; ok {
		deny := toSet(project.DisabledMcpjsonServers)
		allow := project.EnabledMcpjsonServers

		for key, entry := range project.McpServers {
			if deny[key] {
				continue
			}
			if len(allow) > 0 && !containsFold(allow, key) {
				continue
			}
			norm, ok := normalize(key, entry, originClaudeScoped, path)
			if !ok {
				continue
			}
			local[key] = merged{entry: norm, origin: originClaudeScoped}
		}
	}

	for key, entry := range file.McpServers {
		norm, ok := normalize(key, entry, originClaudeUser, path)
		if !ok {
			continue
		}
		insertIfAbsent(local, key, merged{entry: norm, origin: originClaudeUser})
	}

	for key, v := range local {
		overwrite(m, key, v)
	}
}

// containsFold reports whether key appears in items under a case-insensitive
// comparison, matching how Claude's own enabledMcpjsonServers allow-list is
// evaluated.
func containsFold(items []string, key string) bool {
	for _, item := range items {
		if strings.EqualFold(item, key) {
			return true
		}
	}
	return false
}

func mergeVSCode(m map[string]merged, path string) {
	data, ok := readFile(path)
	if !ok {
		return
	}
	file, err := parseJSONFile[vscodeMCPFile](data)
	if err != nil {
		slog.Warn("discovery: malformed config file", "path", path, "error", err)
		return
	}

	servers := file.Servers
	if len(servers) == 0 {
		servers = file.McpServers
	}
	for key, entry := range servers {
		norm, ok := normalize(key, entry, originVSCode, path)
		if !ok {
			continue
		}
		overwrite(m, key, merged{entry: norm, origin: originVSCode})
	}
}

func normalize(key string, e stdioEntry, origin, path string) (agentconfig.NormalizedSubServer, bool) {
	if e.Command == "" {
		if e.URL != "" {
			slog.Debug("discovery: rejecting non-stdio entry", "key", key, "url", e.URL, "path", path)
		}
		return agentconfig.NormalizedSubServer{}, false
	}
	return agentconfig.NormalizedSubServer{
		Key:     key,
		Command: e.Command,
		Args:    e.Args,
		Env:     e.Env,
		Origin:  agentconfig.SubServerOrigin{Provider: origin, Path: path},
	}, true
}

func selfFilter(m map[string]agentconfig.NormalizedSubServer) {
	for key, entry := range m {
		if strings.EqualFold(key, "switchboard") {
			delete(m, key)
			continue
		}
		base := filepath.Base(entry.Command)
		if strings.HasPrefix(strings.ToLower(base), "switchboard-mcp") {
			delete(m, key)
		}
	}
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	s := make(map[string]bool, len(items))
	for _, i := range items {
		s[i] = true
	}
	return s
}

func expandHome(path, home string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}

// canonicalWorkspacePath resolves the workspace directory to an absolute
// path the way Claude's own config keys its `projects` map.
func canonicalWorkspacePath(workspaceDir string) string {
	abs, err := filepath.Abs(workspaceDir)
	if err != nil {
		return workspaceDir
	}
	return abs
}
