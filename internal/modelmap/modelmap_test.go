package modelmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

func TestApplySetsProviderWhenAbsent(t *testing.T) {
	run := &agentconfig.AgentRun{Model: "sonnet"}
	Apply(run, DefaultModelMap(), ApplyOptions{})
	assert.Equal(t, "claude-3-5-sonnet-latest", run.Model)
	assert.Equal(t, "anthropic", run.ModelProvider)
}

func TestApplyPreservesUserProviderUnlessOverride(t *testing.T) {
	run := &agentconfig.AgentRun{Model: "sonnet", ModelProvider: "custom"}
	Apply(run, DefaultModelMap(), ApplyOptions{})
	assert.Equal(t, "custom", run.ModelProvider)

	run2 := &agentconfig.AgentRun{Model: "sonnet", ModelProvider: "custom"}
	Apply(run2, DefaultModelMap(), ApplyOptions{OverrideProvider: true})
	assert.Equal(t, "anthropic", run2.ModelProvider)
}

func TestApplyIdempotent(t *testing.T) {
	run := &agentconfig.AgentRun{Model: "sonnet"}
	m := DefaultModelMap()
	Apply(run, m, ApplyOptions{})
	once := *run
	Apply(run, m, ApplyOptions{})
	assert.Equal(t, once, *run)
}

func TestApplyMiss(t *testing.T) {
	run := &agentconfig.AgentRun{Model: "totally-unknown-model"}
	Apply(run, DefaultModelMap(), ApplyOptions{})
	assert.Equal(t, "totally-unknown-model", run.Model)
}

func TestParseFileWithAliases(t *testing.T) {
	data := []byte(`
[[mappings]]
token = "fast"
to_model = "gpt-4o-mini"
to_provider = "openai"
aliases = ["quick"]

[provider_aliases]
"my-claude" = "anthropic"
`)
	m, err := ParseFile(data)
	require.NoError(t, err)
	assert.Equal(t, Target{Model: "gpt-4o-mini", Provider: "openai"}, m.ByToken["fast"])
	assert.Equal(t, Target{Model: "gpt-4o-mini", Provider: "openai"}, m.ByToken["quick"])
	assert.Equal(t, "anthropic", m.ProviderAliases["my-claude"])
}
