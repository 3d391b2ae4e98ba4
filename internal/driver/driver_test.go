package driver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
	"github.com/nikhil-pandey/switchboard/internal/driver"
	"github.com/nikhil-pandey/switchboard/internal/driver/refdriver"
)

func TestRunRejectsRelativeCwd(t *testing.T) {
	agent := agentconfig.PreparedAgent{Name: "helper"}
	_, err := driver.Run(context.Background(), refdriver.New(), agent, "helper", "do the thing", "relative/path")
	require.ErrorIs(t, err, driver.ErrBadCwd)
}

func TestRunEchoesTaskAndSucceeds(t *testing.T) {
	agent := agentconfig.PreparedAgent{Name: "helper"}
	result, err := driver.Run(context.Background(), refdriver.New(), agent, "helper", "list files", "/tmp/work")
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 0, result.Status)
	assert.Contains(t, result.Stdout, "list files")
	assert.Empty(t, result.Stderr)
}

func TestBuildProfileCarriesToggles(t *testing.T) {
	agent := agentconfig.PreparedAgent{
		Name: "helper",
		Run: agentconfig.AgentRun{
			Toggles: agentconfig.RunToggles{Plan: true, WebSearch: true},
		},
	}
	profile := driver.BuildProfile(agent, "helper", "/tmp/work")
	assert.Equal(t, "/tmp/work", profile.CWD)
	assert.True(t, profile.Toggles.Plan)
	assert.True(t, profile.Toggles.WebSearch)
	assert.False(t, profile.Toggles.ApplyPatch)
}
