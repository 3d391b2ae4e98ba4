// Package settings resolves process configuration from three layers, later
// wins unless marked otherwise: built-in defaults, the user's
// <switchboard_home>/config.toml, and environment variables (env always
// wins if set).
package settings

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoggingSettings mirrors the `[logging]` config.toml table.
type LoggingSettings struct {
	ToFile  bool   `toml:"to_file" mapstructure:"to_file"`
	Dir     string `toml:"dir" mapstructure:"dir"`
	JSON    bool   `toml:"json" mapstructure:"json"`
	Compact bool   `toml:"compact" mapstructure:"compact"`
	Pretty  bool   `toml:"pretty" mapstructure:"pretty"`
	Level   string `toml:"level" mapstructure:"level"`
}

// AgentsSettings mirrors the `[agents]` config.toml table.
type AgentsSettings struct {
	EnableCodex     bool     `toml:"enable_codex" mapstructure:"enable_codex"`
	EnableAnthropic bool     `toml:"enable_anthropic" mapstructure:"enable_anthropic"`
	EnableVSCode    bool     `toml:"enable_vscode" mapstructure:"enable_vscode"`
	CodexDirs       []string `toml:"codex_dirs" mapstructure:"codex_dirs"`
	AnthropicDirs   []string `toml:"anthropic_dirs" mapstructure:"anthropic_dirs"`
	VSCodeDirs      []string `toml:"vscode_dirs" mapstructure:"vscode_dirs"`

	PrefixCodex     string `toml:"prefix_codex" mapstructure:"prefix_codex"`
	PrefixAnthropic string `toml:"prefix_anthropic" mapstructure:"prefix_anthropic"`
	PrefixVSCode    string `toml:"prefix_vscode" mapstructure:"prefix_vscode"`

	Filter string `toml:"filter" mapstructure:"filter"`

	MCPDiscovery         bool `toml:"mcp_discovery" mapstructure:"mcp_discovery"`
	VSCodeUserMCP        bool `toml:"vscode_user_mcp" mapstructure:"vscode_user_mcp"`
	LimitMCPToReferenced bool `toml:"limit_mcp_to_referenced" mapstructure:"limit_mcp_to_referenced"`

	Enumerate       bool `toml:"enumerate" mapstructure:"enumerate"`
	EnumTimeoutMS   int  `toml:"enum_timeout_ms" mapstructure:"enum_timeout_ms"`
	EnumMaxServers  int  `toml:"enum_max_servers" mapstructure:"enum_max_servers"`
	EnumStrict      bool `toml:"enum_strict" mapstructure:"enum_strict"`
	EnumFallbackAll bool `toml:"enum_fallback_all" mapstructure:"enum_fallback_all"`

	ToolmapEnable              bool `toml:"toolmap_enable" mapstructure:"toolmap_enable"`
	ToolmapAllowCustomServers  bool `toml:"toolmap_allow_custom_servers" mapstructure:"toolmap_allow_custom_servers"`

	ModelMapEnable           bool   `toml:"model_map_enable" mapstructure:"model_map_enable"`
	ModelMapFile             string `toml:"model_map_file" mapstructure:"model_map_file"`
	ModelMapStrict           bool   `toml:"model_map_strict" mapstructure:"model_map_strict"`
	ModelMapOverrideProvider  bool   `toml:"model_map_override_provider" mapstructure:"model_map_override_provider"`
	ModelMapNormalizeProvider bool   `toml:"model_map_normalize_provider" mapstructure:"model_map_normalize_provider"`
}

// TransportSettings controls the upstream MCP transport: which wire
// protocol to speak to the client and, for HTTP, where to bind.
type TransportSettings struct {
	Transport string // "stdio" or "http"
	Host      string
	Port      int
	PingSecs  int
	HTTPJSON  bool
}

// Settings is the fully resolved process configuration.
type Settings struct {
	WorkspaceDir      string
	SwitchboardHome   string
	SkipSelf          bool
	Logging           LoggingSettings
	Agents            AgentsSettings
	Transport         TransportSettings
}

// Defaults returns the built-in configuration, before any config file or
// environment overlay.
func Defaults(workspaceDir, home string) Settings {
	sbHome := filepath.Join(home, ".switchboard")
	return Settings{
		WorkspaceDir:    workspaceDir,
		SwitchboardHome: sbHome,
		SkipSelf:        true,
		Logging: LoggingSettings{
			ToFile: false,
			Dir:    "",
			Level:  "info",
		},
		Agents: AgentsSettings{
			EnableCodex:     true,
			EnableAnthropic: true,
			EnableVSCode:    true,
			CodexDirs: []string{
				filepath.Join(workspaceDir, ".agents"),
				filepath.Join(sbHome, "agents"),
				filepath.Join(home, ".agents"),
			},
			AnthropicDirs: []string{
				filepath.Join(workspaceDir, ".claude", "agents"),
				filepath.Join(sbHome, "agents"),
				filepath.Join(home, ".claude", "agents"),
			},
			VSCodeDirs: []string{
				filepath.Join(workspaceDir, ".github", "chatmodes"),
				filepath.Join(sbHome, "chatmodes"),
				filepath.Join(home, ".chatmodes"),
			},
			PrefixCodex:               "",
			PrefixAnthropic:           "",
			PrefixVSCode:              "",
			MCPDiscovery:              true,
			VSCodeUserMCP:             true,
			LimitMCPToReferenced:      false,
			Enumerate:                 false,
			EnumTimeoutMS:             4000,
			EnumMaxServers:            16,
			EnumStrict:                false,
			EnumFallbackAll:           false,
			ToolmapEnable:             true,
			ToolmapAllowCustomServers: true,
			ModelMapEnable:            true,
			ModelMapFile:              filepath.Join(workspaceDir, ".agents", "model-map.toml"),
			ModelMapStrict:            false,
			ModelMapOverrideProvider:  false,
			ModelMapNormalizeProvider: true,
		},
		Transport: TransportSettings{
			Transport: "stdio",
			Host:      "127.0.0.1",
			Port:      8585,
			PingSecs:  30,
			HTTPJSON:  false,
		},
	}
}

// envString overlays env[name] onto *dst if the variable is set, even to the
// empty string.
func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok {
		*dst = v
	}
}

func envBool(dst *bool, name string) {
	if v, ok := os.LookupEnv(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envInt(dst *int, name string) {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envStringSlice(dst *[]string, name string) {
	if v, ok := os.LookupEnv(name); ok {
		var out []string
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
		*dst = out
	}
}

// ApplyEnv overlays recognized environment variables onto s. An env var
// that is set always wins over whatever s already holds.
func (s *Settings) ApplyEnv() {
	envString(&s.WorkspaceDir, "WORKSPACE_DIR")
	envString(&s.SwitchboardHome, "SWITCHBOARD_HOME")
	envBool(&s.SkipSelf, "SWITCHBOARD_SKIP_SELF")

	envBool(&s.Logging.ToFile, "LOG_TO_FILE")
	envString(&s.Logging.Dir, "LOG_DIR")
	envBool(&s.Logging.JSON, "TRACING_JSON")
	envBool(&s.Logging.Compact, "TRACING_COMPACT")
	envBool(&s.Logging.Pretty, "TRACING_PRETTY")
	if v, ok := os.LookupEnv("TRACING_FILTER"); ok {
		s.Logging.Level = v
	} else if v, ok := os.LookupEnv("RUST_LOG"); ok {
		s.Logging.Level = v
	}

	envBool(&s.Agents.EnableCodex, "AGENTS_ENABLE_CODEX")
	envBool(&s.Agents.EnableAnthropic, "AGENTS_ENABLE_ANTHROPIC")
	envBool(&s.Agents.EnableVSCode, "AGENTS_ENABLE_VSCODE")
	envStringSlice(&s.Agents.CodexDirs, "AGENTS_CODEX_DIRS")
	envStringSlice(&s.Agents.AnthropicDirs, "AGENTS_ANTHROPIC_DIRS")
	envStringSlice(&s.Agents.VSCodeDirs, "AGENTS_VSCODE_DIRS")
	envString(&s.Agents.PrefixCodex, "AGENTS_PREFIX_CODEX")
	envString(&s.Agents.PrefixAnthropic, "AGENTS_PREFIX_ANTHROPIC")
	envString(&s.Agents.PrefixVSCode, "AGENTS_PREFIX_VSCODE")
	envString(&s.Agents.Filter, "AGENTS_FILTER")
	envBool(&s.Agents.MCPDiscovery, "AGENTS_MCP_DISCOVERY")
	envBool(&s.Agents.VSCodeUserMCP, "AGENTS_VSCODE_USER_MCP")
	envBool(&s.Agents.LimitMCPToReferenced, "AGENTS_LIMIT_MCP_TO_REFERENCED")
	envBool(&s.Agents.Enumerate, "AGENTS_MCP_ENUMERATE")
	envInt(&s.Agents.EnumTimeoutMS, "AGENTS_MCP_ENUM_TIMEOUT_MS")
	envInt(&s.Agents.EnumMaxServers, "AGENTS_MCP_ENUM_MAX_SERVERS")
	envBool(&s.Agents.EnumStrict, "AGENTS_MCP_ENUM_STRICT")
	if v, ok := os.LookupEnv("AGENTS_MCP_ENUM_FALLBACK"); ok {
		s.Agents.EnumFallbackAll = v == "all"
	}
	envBool(&s.Agents.ToolmapEnable, "AGENTS_TOOLMAP_ENABLE")
	envBool(&s.Agents.ToolmapAllowCustomServers, "AGENTS_TOOLMAP_ALLOW_CUSTOM_SERVERS")
	envBool(&s.Agents.ModelMapEnable, "AGENTS_MODEL_MAP_ENABLE")
	envString(&s.Agents.ModelMapFile, "AGENTS_MODEL_MAP_FILE")
	envBool(&s.Agents.ModelMapStrict, "AGENTS_MODEL_MAP_STRICT")
	envBool(&s.Agents.ModelMapOverrideProvider, "AGENTS_MODEL_MAP_OVERRIDE_PROVIDER")
	envBool(&s.Agents.ModelMapNormalizeProvider, "AGENTS_MODEL_MAP_NORMALIZE_PROVIDER")

	envString(&s.Transport.Transport, "TRANSPORT")
	envString(&s.Transport.Host, "HOST")
	envInt(&s.Transport.Port, "PORT")
	envInt(&s.Transport.PingSecs, "PING_SECS")
	envBool(&s.Transport.HTTPJSON, "HTTP_JSON")
}

// ExpandHome rewrites a leading "~/" using home.
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
