// Package agentconfig holds the provider-agnostic data model produced by
// every parser: AgentConfig, AgentRun, AgentTogglePolicy, and the tagged
// McpToolRef variant.
package agentconfig

import (
	"fmt"
	"strings"
)

// ProviderID identifies the ecosystem an agent definition was discovered
// from.
type ProviderID int

const (
	ProviderCodex ProviderID = iota
	ProviderAnthropic
	ProviderVSCode
)

func (p ProviderID) String() string {
	switch p {
	case ProviderCodex:
		return "codex"
	case ProviderAnthropic:
		return "anthropic"
	case ProviderVSCode:
		return "vscode"
	default:
		return "unknown"
	}
}

// AgentSource records where an AgentConfig came from.
type AgentSource struct {
	Provider ProviderID
	Path     string
}

// RefKind tags the two McpToolRef variants.
type RefKind int

const (
	RefBare RefKind = iota
	RefNamespaced
)

// McpToolRef is a tagged variant: Bare{Tool} or Namespaced{ServerKey, Tool}.
// Callers must switch on Kind and cover both cases.
type McpToolRef struct {
	Kind      RefKind
	Tool      string
	ServerKey string // only set when Kind == RefNamespaced
}

func Bare(tool string) McpToolRef {
	return McpToolRef{Kind: RefBare, Tool: tool}
}

func Namespaced(serverKey, tool string) McpToolRef {
	return McpToolRef{Kind: RefNamespaced, ServerKey: serverKey, Tool: tool}
}

func (r McpToolRef) String() string {
	switch r.Kind {
	case RefBare:
		return r.Tool
	case RefNamespaced:
		return fmt.Sprintf("%s::%s", r.ServerKey, r.Tool)
	default:
		return "<invalid-ref>"
	}
}

// AgentTogglePolicy folds bare tool names into capability flags during
// preparation; it is discarded once AgentRun.Toggles has been populated.
type AgentTogglePolicy struct {
	Plan       *bool
	ApplyPatch *bool
	ViewImage  *bool
	WebSearch  *bool
}

// RunToggles are the four capability flags the driver consumes. Terminal
// access is implicit and always available; it is never surfaced as a
// toggle, only consumed silently during tool mapping.
type RunToggles struct {
	Plan       bool `mapstructure:"plan" toml:"plan" yaml:"plan"`
	ApplyPatch bool `mapstructure:"apply_patch" toml:"apply_patch" yaml:"apply_patch"`
	ViewImage  bool `mapstructure:"view_image" toml:"view_image" yaml:"view_image"`
	WebSearch  bool `mapstructure:"web_search" toml:"web_search" yaml:"web_search"`
}

// AgentRun is the `[run]` table of a Codex agent, and the run-shaped fields
// mappers write into for the other providers.
type AgentRun struct {
	Model             string `mapstructure:"model" toml:"model,omitempty" yaml:"model,omitempty"`
	ModelProvider     string `mapstructure:"model_provider" toml:"model_provider,omitempty" yaml:"model_provider,omitempty"`
	ApprovalPolicy    string `mapstructure:"approval_policy" toml:"approval_policy,omitempty" yaml:"approval_policy,omitempty"`
	SandboxMode       string `mapstructure:"sandbox_mode" toml:"sandbox_mode,omitempty" yaml:"sandbox_mode,omitempty"`
	StoreResponses    bool   `mapstructure:"store_responses" toml:"store_responses,omitempty" yaml:"store_responses,omitempty"`
	ReasoningEffort   string `mapstructure:"reasoning_effort" toml:"reasoning_effort,omitempty" yaml:"reasoning_effort,omitempty"`
	ReasoningSummary  string `mapstructure:"reasoning_summary" toml:"reasoning_summary,omitempty" yaml:"reasoning_summary,omitempty"`
	Verbosity         string `mapstructure:"verbosity" toml:"verbosity,omitempty" yaml:"verbosity,omitempty"`
	BaseURL           string `mapstructure:"base_url" toml:"base_url,omitempty" yaml:"base_url,omitempty"`
	Toggles           RunToggles
}

// applyToggle sets a toggle field only if v is non-nil, matching the
// "folded into AgentRun during preparation" behavior.
func applyToggle(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// ApplyTogglePolicy folds an AgentTogglePolicy into the run's toggles. It is
// a pure merge: nil fields in the policy leave the existing toggle alone.
func (r *AgentRun) ApplyTogglePolicy(p AgentTogglePolicy) {
	applyToggle(&r.Toggles.Plan, p.Plan)
	applyToggle(&r.Toggles.ApplyPatch, p.ApplyPatch)
	applyToggle(&r.Toggles.ViewImage, p.ViewImage)
	applyToggle(&r.Toggles.WebSearch, p.WebSearch)
}

// AgentConfig is the common shape every parser produces. It is immutable
// once built by a parser; mappers clone/replace fields on a copy rather than
// mutating the parsed original in place at the call site (the loader owns
// the copy it passes to mappers).
type AgentConfig struct {
	Name             string
	Description      string
	Tags             []string
	Instructions     string
	InstructionsFile string
	Run              AgentRun
	McpToolRefs      []McpToolRef
	McpServers       map[string]any // opaque, passed through untouched
}

// NonWhitespaceInstructions returns the instructions, trimmed, or "" if the
// trimmed result is empty. Callers use this to enforce the invariant that a
// PreparedAgent's instructions are either absent or non-whitespace-only.
func (c *AgentConfig) NonWhitespaceInstructions() string {
	return strings.TrimSpace(c.Instructions)
}
