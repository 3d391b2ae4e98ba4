// Package enumerator opens a short-lived MCP client against a stdio
// sub-server, lists its tools under a timeout, and tears it down. It never
// retries.
package enumerator

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nikhil-pandey/switchboard/internal/agentconfig"
)

// Inventory is one sub-server's enumerated tool names.
type Inventory struct {
	Key   string
	Tools map[string]struct{}
}

// EnumerationError wraps the stage (create/start/initialize/list/shutdown) that
// failed, so callers can log precisely.
type EnumerationError struct {
	Key   string
	Stage string
	Err   error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("enumerate %s: %s: %v", e.Key, e.Stage, e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// Enumerate launches srv, performs initialize + tools/list, and shuts down.
// The start, initialize, and list steps are each bounded independently by
// timeout; the final Close call is not bounded by it.
func Enumerate(ctx context.Context, srv agentconfig.NormalizedSubServer, timeout time.Duration) (Inventory, error) {
	mcpClient, err := client.NewStdioMCPClient(srv.Command, envSlice(srv.Env), srv.Args...)
	if err != nil {
		return Inventory{}, &EnumerationError{Key: srv.Key, Stage: "create", Err: err}
	}
	defer mcpClient.Close()

	startCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := mcpClient.Start(startCtx); err != nil {
		return Inventory{}, &EnumerationError{Key: srv.Key, Stage: "start", Err: err}
	}

	initCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	initReq := mcp.InitializeRequest{}
	initReq.Params.ClientInfo = mcp.Implementation{Name: "switchboard-mcp", Version: "1.0.0"}
	initReq.Params.ProtocolVersion = "2024-11-05"
	// Advertise empty capabilities; this client only lists tools.
	if _, err := mcpClient.Initialize(initCtx, initReq); err != nil {
		return Inventory{}, &EnumerationError{Key: srv.Key, Stage: "initialize", Err: err}
	}

	listCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	listResp, err := mcpClient.ListTools(listCtx, mcp.ListToolsRequest{})
	if err != nil {
		return Inventory{}, &EnumerationError{Key: srv.Key, Stage: "list", Err: err}
	}

	tools := make(map[string]struct{}, len(listResp.Tools))
	for _, t := range listResp.Tools {
		tools[t.Name] = struct{}{}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := mcpClient.Close(); err != nil {
		return Inventory{}, &EnumerationError{Key: srv.Key, Stage: "shutdown", Err: err}
	}
	_ = shutdownCtx

	return Inventory{Key: srv.Key, Tools: tools}, nil
}

func envSlice(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	return out
}
