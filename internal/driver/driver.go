// Package driver adapts a PreparedAgent and a task into a single run of an
// agent runtime (the "driver"), by draining its event stream to completion.
// The driver itself is an out-of-scope black box; this package only defines
// the adapter contract and state machine that any driver implementation
// plugs into.
package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

// EventKind enumerates the driver event stream's variants.
type EventKind int

const (
	EventTaskComplete EventKind = iota
	EventShutdownComplete
	EventError
	EventStreamError
	EventBackground
	EventOther
)

// Event is one item from a driver's conversation event stream.
type Event struct {
	Kind      EventKind
	Message   string // TaskComplete's last agent message, Error/StreamError's message, BackgroundEvent's message
	Label     string // informational label for EventOther (exec begin/end, patch apply, ...)
}

// Conversation is the minimal surface an underlying driver runtime exposes:
// submit one task, then drain events until the stream ends or errors.
type Conversation interface {
	SubmitTask(ctx context.Context, task string) error
	Next(ctx context.Context) (Event, error, bool) // event, recv error, more-events
	Shutdown(ctx context.Context) error
}

// Profile is the derived, per-agent driver configuration: a named profile
// populated only with fields the agent explicitly set, plus sub-servers and
// the runtime overrides.
type Profile struct {
	Name             string
	CWD              string
	BaseInstructions string
	SandboxMode      string
	Toggles          agentconfig.RunToggles
	SubServers       map[string]agentconfig.NormalizedSubServer
	Model            string
	ModelProvider    string
}

// Runtime is the out-of-scope black box: given a built Profile, it opens a
// Conversation.
type Runtime interface {
	NewConversation(ctx context.Context, profile Profile) (Conversation, error)
}

// Result is what a single driver run hands back to the MCP handler.
type Result struct {
	OK     bool
	Status int
	Stdout string
	Stderr string
}

// state is the adapter's internal lifecycle.
type state int

const (
	stateStarting state = iota
	stateRunning
	stateDraining
	stateDone
)

// ErrBadCwd is returned when cwd is not absolute.
var ErrBadCwd = errors.New("cwd must be an absolute path")

// BuildProfile constructs the derived profile for an agent: a profile named
// safe_name(agent.name), carrying only the fields the agent explicitly set,
// its sub_servers, and the call's cwd/instructions override.
func BuildProfile(agent agentconfig.PreparedAgent, safeName, cwd string) Profile {
	instructions := agent.Instructions
	return Profile{
		Name:             safeName,
		CWD:              cwd,
		BaseInstructions: instructions,
		SandboxMode:      agent.Run.SandboxMode,
		Toggles:          agent.Run.Toggles,
		SubServers:       agent.SubServers,
		Model:            agent.Run.Model,
		ModelProvider:    agent.Run.ModelProvider,
	}
}

// Run executes a single task against agent in cwd.
func Run(ctx context.Context, rt Runtime, agent agentconfig.PreparedAgent, safeName, task, cwd string) (Result, error) {
	if !isAbs(cwd) {
		return Result{}, ErrBadCwd
	}

	profile := BuildProfile(agent, safeName, cwd)
	conv, err := rt.NewConversation(ctx, profile)
	if err != nil {
		return Result{OK: false, Status: 1}, fmt.Errorf("driver launch: %w", err)
	}

	convID := uuid.New().String()
	if err := conv.SubmitTask(ctx, task); err != nil {
		return Result{OK: false, Status: 1}, fmt.Errorf("driver submit (conversation %s): %w", convID, err)
	}

	var stdout, stderr strings.Builder
	st := stateRunning
	ok := false

	for st != stateDone {
		event, recvErr, more := conv.Next(ctx)
		if recvErr != nil {
			stderr.WriteString(fmt.Sprintf("error receiving event: %v\n", recvErr))
			st = stateDone
			break
		}

		switch event.Kind {
		case EventTaskComplete:
			if event.Message != "" {
				stdout.WriteString(event.Message)
				stdout.WriteString("\n")
			}
			if st == stateRunning {
				st = stateDraining
				_ = conv.Shutdown(ctx)
			}
		case EventShutdownComplete:
			ok = true
			st = stateDone
		case EventError:
			stderr.WriteString(fmt.Sprintf("error: %s\n", event.Message))
		case EventStreamError:
			stderr.WriteString(fmt.Sprintf("stream_error: %s\n", event.Message))
		case EventBackground:
			stderr.WriteString(event.Message)
			stderr.WriteString("\n")
		case EventOther:
			// exec begin/end, patch apply, MCP tool call begin/end, web
			// search, reasoning, plan updates, aborts: logged by the caller
			// only, no effect on the result buffers.
		}

		if !more && st != stateDone {
			st = stateDone
		}
	}

	status := 1
	if ok {
		status = 0
	}
	return Result{OK: ok, Status: status, Stdout: stdout.String(), Stderr: stderr.String()}, nil
}

func isAbs(path string) bool {
	if path == "" {
		return false
	}
	if strings.HasPrefix(path, "/") {
		return true
	}
	// Windows-style absolute paths (drive-letter or UNC), accepted defensively
	// since the driver contract only requires "absolute", not POSIX.
	if len(path) >= 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		return true
	}
	return strings.HasPrefix(path, "\\\\")
}
