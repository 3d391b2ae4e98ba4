package modelmap

import (
	"log/slog"
	"strings"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

// ApplyOptions configures Apply.
type ApplyOptions struct {
	NormalizeProvider bool
	OverrideProvider  bool
	Strict            bool
}

// Apply rewrites run.Model/run.ModelProvider in place.
// Applying it twice with the same ModelMap is a no-op on the second call
// (idempotent), since the second call's token is already canonical and
// either re-resolves to the same target or misses the table entirely.
func Apply(run *agentconfig.AgentRun, m ModelMap, opts ApplyOptions) {
	if opts.NormalizeProvider && run.ModelProvider != "" {
		lower := strings.ToLower(run.ModelProvider)
		if canonical, ok := m.ProviderAliases[lower]; ok {
			run.ModelProvider = canonical
		} else {
			run.ModelProvider = lower
		}
	}

	if run.Model == "" {
		return
	}

	target, ok := m.ByToken[strings.ToLower(run.Model)]
	if !ok {
		if opts.Strict {
			slog.Warn("modelmap: unknown model token", "token", run.Model)
		} else {
			slog.Debug("modelmap: unknown model token", "token", run.Model)
		}
		return
	}

	run.Model = target.Model
	if target.Provider == "" {
		return
	}
	if run.ModelProvider == "" || opts.OverrideProvider {
		run.ModelProvider = target.Provider
	}
}
