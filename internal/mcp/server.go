package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"worldforge/internal/service"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the world service as MCP tools.
type Server struct {
	world  service.WorldService
	server *mcp.Server
}

// NewServer creates an MCP server with every tool registered.
func NewServer(world service.WorldService) *Server {
	s := &Server{
		world: world,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "worldforge",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Connect serves a single session over t. Used by tests with in-memory transports.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
