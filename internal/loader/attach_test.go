package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

func discoveredFixture() map[string]agentconfig.NormalizedSubServer {
	return map[string]agentconfig.NormalizedSubServer{
		"memory": {Key: "memory", Command: "npx"},
		"github": {Key: "github", Command: "gh-mcp"},
	}
}

func TestAttachWithoutEnumerationAttachAllWhenNotLimited(t *testing.T) {
	agents := []agentconfig.ResolvedAgent{{ToolName: "a"}}
	attachWithoutEnumeration(agents, discoveredFixture(), false)
	assert.Len(t, agents[0].SubServers, 2)
}

func TestAttachWithoutEnumerationNamespacedPicksExact(t *testing.T) {
	agents := []agentconfig.ResolvedAgent{{
		ToolName: "a",
		Config:   agentconfig.AgentConfig{McpToolRefs: []agentconfig.McpToolRef{agentconfig.Namespaced("memory", "remember")}},
	}}
	attachWithoutEnumeration(agents, discoveredFixture(), true)
	assert.Len(t, agents[0].SubServers, 1)
	_, ok := agents[0].SubServers["memory"]
	assert.True(t, ok)
}

func TestAttachWithoutEnumerationBareForcesAttachAll(t *testing.T) {
	agents := []agentconfig.ResolvedAgent{{
		ToolName: "a",
		Config:   agentconfig.AgentConfig{McpToolRefs: []agentconfig.McpToolRef{agentconfig.Bare("search")}},
	}}
	attachWithoutEnumeration(agents, discoveredFixture(), true)
	assert.Len(t, agents[0].SubServers, 2)
}

func TestMatchingServersSortsDeterministically(t *testing.T) {
	inventory := map[string]map[string]struct{}{
		"z": {"search": {}},
		"a": {"search": {}},
	}
	assert.Equal(t, []string{"a", "z"}, matchingServers(inventory, "search"))
}
