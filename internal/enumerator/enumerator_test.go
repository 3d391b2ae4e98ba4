package enumerator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

// TestEnumerateBadCommandFails exercises the create-stage failure path with
// a command that cannot possibly exist, without spawning any real MCP
// server (which would make this test environment-dependent).
func TestEnumerateBadCommandFails(t *testing.T) {
	srv := agentconfig.NormalizedSubServer{
		Key:     "bogus",
		Command: "/nonexistent/switchboard-test-binary-xyz",
	}
	_, err := Enumerate(context.Background(), srv, 200*time.Millisecond)
	require.Error(t, err)
	var enumErr *EnumerationError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "bogus", enumErr.Key)
}

func TestEnvSlice(t *testing.T) {
	assert.Nil(t, envSlice(nil))
	got := envSlice(map[string]string{"A": "1"})
	require.Len(t, got, 1)
	assert.Equal(t, "A=1", got[0])
}
