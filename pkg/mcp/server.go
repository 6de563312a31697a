package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/cvgen/pkg/version"
)

// Server implements the MCP server for cvgen.
type Server struct {
	server      *mcp.Server
	address     string
	master      string
	profilesDir string
}

// NewServer creates a new MCP server instance. Tools read the master record
// at master and look profiles up in profilesDir. An empty address serves
// over stdio.
func NewServer(address, master, profilesDir string) *Server {
	impl := &mcp.Implementation{
		Name:    name,
		Version: version.GetVersion(),
	}

	opts := &mcp.ServerOptions{
		Instructions: instructions,
	}

	s := &Server{
		server:      mcp.NewServer(impl, opts),
		address:     address,
		master:      master,
		profilesDir: profilesDir,
	}

	s.registerTools()

	return s
}

// registerTools registers all available tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_profiles",
		Description: "List the rendering profiles available for CV generation.",
	}, WithLogging(s.handleListProfiles))

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "build_context",
		Description: "Build the template context for the master record with a profile. " +
			"You MUST use a profile id from the list_profiles output, or leave it empty for no profile.",
	}, WithLogging(s.handleBuildContext))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_cv",
		Description: "Render a template with the master record and a profile, and write the result to a file.",
	}, WithLogging(s.handleGenerate))
}

func (s *Server) Server() *mcp.Server {
	return s.server
}

// Serve starts the MCP server and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	slog.InfoContext(ctx, "starting MCP server", slog.String("address", s.address))

	if s.address == "" {
		err := s.server.Run(ctx, &mcp.StdioTransport{})
		if err != nil {
			return fmt.Errorf("serve stdio: %w", err)
		}

		return nil
	}

	err := s.serveHTTP(ctx)
	if err != nil {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	return nil
}

func (s *Server) serveHTTP(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	server := &http.Server{
		Addr:    s.address,
		Handler: handler,

		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.Error("shutdown MCP server", slog.Any("err", err))
		}
	}()

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
