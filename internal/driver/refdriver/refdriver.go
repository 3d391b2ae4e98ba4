// Package refdriver is a deterministic, in-process stand-in for a real
// agent runtime. It exists purely so the adapter's event-draining state
// machine and the MCP handler can be tested and smoke-tested end to end
// without shelling out to a real driver binary.
package refdriver

import (
	"context"
	"fmt"

	"github.com/nikhil-pandey/switchboard/internal/driver"
)

// Runtime is a driver.Runtime that echoes the submitted task back as the
// final agent message, then shuts down cleanly.
type Runtime struct{}

func New() *Runtime { return &Runtime{} }

func (r *Runtime) NewConversation(ctx context.Context, profile driver.Profile) (driver.Conversation, error) {
	return &conversation{profile: profile}, nil
}

type conversation struct {
	profile driver.Profile
	task    string
	events  []driver.Event
	pos     int
}

func (c *conversation) SubmitTask(ctx context.Context, task string) error {
	c.task = task
	c.events = []driver.Event{
		{Kind: driver.EventOther, Label: "exec_begin"},
		{Kind: driver.EventTaskComplete, Message: fmt.Sprintf("echo(%s): %s", c.profile.Name, task)},
		{Kind: driver.EventShutdownComplete},
	}
	return nil
}

func (c *conversation) Next(ctx context.Context) (driver.Event, error, bool) {
	if c.pos >= len(c.events) {
		return driver.Event{}, nil, false
	}
	event := c.events[c.pos]
	c.pos++
	return event, nil, c.pos < len(c.events)
}

func (c *conversation) Shutdown(ctx context.Context) error {
	return nil
}
