package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/nikhil-pandey/switchboard/internal/settings"
)

// Serve starts mcpServer on the transport named by t.Transport ("stdio" or
// "http"), blocking until the context is cancelled or the transport fails.
func Serve(ctx context.Context, mcpServer *server.MCPServer, t settings.TransportSettings) error {
	switch t.Transport {
	case "stdio":
		return server.ServeStdio(mcpServer)
	case "http":
		return serveHTTP(ctx, mcpServer, t)
	default:
		return fmt.Errorf("unknown transport %q", t.Transport)
	}
}

// serveHTTP mounts the Streamable HTTP transport at /mcp behind a plain
// net/http server and mux rather than letting mcp-go own the listener,
// so shutdown can be sequenced explicitly.
func serveHTTP(ctx context.Context, mcpServer *server.MCPServer, t settings.TransportSettings) error {
	streamable := server.NewStreamableHTTPServer(mcpServer, server.WithEndpointPath("/mcp"))

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)

	addr := fmt.Sprintf("%s:%d", t.Host, t.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	httpServer := &http.Server{Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = streamable.Shutdown(shutdownCtx)
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
