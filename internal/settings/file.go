package settings

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the raw `config.toml` shape, decoded generically so unknown
// keys don't break parsing and so ApplyFile can log them.
type fileConfig struct {
	Logging map[string]any `toml:"logging"`
	Agents  map[string]any `toml:"agents"`
}

// ApplyFile overlays <switchboard_home>/config.toml onto s. A missing file
// is not an error (silently use defaults); an unreadable or malformed one
// is a warning, and s is left unchanged.
func (s *Settings) ApplyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("settings: could not read config file", "path", path, "err", err)
		}
		return
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		slog.Warn("settings: could not parse config file", "path", path, "err", err)
		return
	}

	if raw.Logging != nil {
		if err := mapstructure.Decode(raw.Logging, &s.Logging); err != nil {
			slog.Warn("settings: could not decode [logging] table", "err", err)
		}
	}
	if raw.Agents != nil {
		if err := mapstructure.Decode(raw.Agents, &s.Agents); err != nil {
			slog.Warn("settings: could not decode [agents] table", "err", err)
		}
	}
}

// Load builds a Settings by layering defaults, the user config file, and
// environment variables, in that order. WORKSPACE_DIR and SWITCHBOARD_HOME
// are consulted early since they determine where the config file itself
// lives.
func Load(workspaceDir, home string) Settings {
	if v, ok := os.LookupEnv("WORKSPACE_DIR"); ok {
		workspaceDir = v
	}
	sbHome := ""
	if v, ok := os.LookupEnv("SWITCHBOARD_HOME"); ok {
		sbHome = v
	}

	s := Defaults(workspaceDir, home)
	if sbHome != "" {
		s.SwitchboardHome = sbHome
	}
	s.ApplyFile(filepath.Join(s.SwitchboardHome, "config.toml"))
	s.ApplyEnv()
	return s
}
