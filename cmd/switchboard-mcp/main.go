// Command switchboard-mcp speaks MCP to one upstream client and exposes
// every discovered agent definition as a callable tool, delegating
// execution to the configured driver runtime.
//
// Usage:
//
//	switchboard-mcp serve
//	switchboard-mcp serve --transport http --port 8585
//	switchboard-mcp validate
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/nikhil-pandey/switchboard/internal/driver/refdriver"
	"github.com/nikhil-pandey/switchboard/internal/loader"
	"github.com/nikhil-pandey/switchboard/internal/logging"
	"github.com/nikhil-pandey/switchboard/internal/mcpserver"
	"github.com/nikhil-pandey/switchboard/internal/settings"
)

// CLI is the top-level kong command tree.
type CLI struct {
	Serve    ServeCmd    `cmd:"" help:"Start the MCP server."`
	Validate ValidateCmd `cmd:"" help:"Load agents and print a summary without serving."`

	WorkspaceDir string `help:"Workspace root to scan for agent definitions." type:"path"`
}

// ServeCmd starts the MCP server and blocks until signaled.
type ServeCmd struct {
	Transport string `help:"Upstream transport (stdio or http); overrides config.toml if set."`
	Host      string `help:"HTTP host to bind, if transport=http."`
	Port      int    `help:"HTTP port to bind, if transport=http."`
}

func (c *ServeCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	s, cleanupLog, err := bootstrap(cli)
	if err != nil {
		return err
	}
	defer cleanupLog()

	if c.Transport != "" {
		s.Transport.Transport = c.Transport
	}
	if c.Host != "" {
		s.Transport.Host = c.Host
	}
	if c.Port != 0 {
		s.Transport.Port = c.Port
	}

	settings.Watch(ctx, s)

	prepared := loader.PrepareAll(ctx, s)
	registry := mcpserver.NewRegistry(prepared)
	handler := mcpserver.NewHandler(registry, refdriver.New())
	mcpServer := handler.Build("switchboard-mcp", version())

	return mcpserver.Serve(ctx, mcpServer, s.Transport)
}

// ValidateCmd loads agents with the resolved settings and prints a summary,
// for operators checking their configuration before wiring up a real
// client.
type ValidateCmd struct{}

func (c *ValidateCmd) Run(cli *CLI) error {
	s, cleanupLog, err := bootstrap(cli)
	if err != nil {
		return err
	}
	defer cleanupLog()

	prepared := loader.PrepareAll(context.Background(), s)
	fmt.Printf("%d agent(s) prepared:\n", len(prepared))
	for _, p := range prepared {
		fmt.Printf("  %-24s provider=%-10s sub_servers=%d\n", p.ToolName, p.Provider, len(p.SubServers))
	}
	return nil
}

func bootstrap(cli *CLI) (settings.Settings, func(), error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return settings.Settings{}, nil, fmt.Errorf("resolve home directory: %w", err)
	}

	workspace := cli.WorkspaceDir
	if workspace == "" {
		workspace, err = os.Getwd()
		if err != nil {
			return settings.Settings{}, nil, fmt.Errorf("resolve working directory: %w", err)
		}
	}
	workspace, err = filepath.Abs(workspace)
	if err != nil {
		return settings.Settings{}, nil, fmt.Errorf("resolve workspace path: %w", err)
	}

	s := settings.Load(workspace, home)

	logDir := s.Logging.Dir
	if logDir == "" {
		logDir = filepath.Join(s.SwitchboardHome, "logs")
	}
	cleanup, err := logging.Init(logging.Options{
		ToFile:  s.Logging.ToFile,
		Dir:     logDir,
		JSON:    s.Logging.JSON,
		Compact: s.Logging.Compact,
		Pretty:  s.Logging.Pretty,
		Level:   s.Logging.Level,
	})
	if err != nil {
		return settings.Settings{}, nil, fmt.Errorf("initialize logging: %w", err)
	}

	return s, cleanup, nil
}

func version() string {
	return "0.1.0"
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("switchboard-mcp"),
		kong.Description("Meta-MCP broker: exposes configured agents as MCP tools."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
