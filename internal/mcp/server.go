package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/history"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Options configures the MCP server.
type Options struct {
	// InvitationPath is loaded whenever a tool call carries no inline
	// invitation document.
	InvitationPath string
	OutputDir      string
	Placeholder    string
	Packager       *archive.Packager
	History        *history.Store // optional
}

// Server wraps an MCP server that exposes invitation rendering tools.
type Server struct {
	opts Options
	mcp  *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(opts Options) *Server {
	if opts.Placeholder == "" {
		opts.Placeholder = assets.DefaultPlaceholder
	}
	s := &Server{opts: opts}

	s.mcp = server.NewMCPServer(
		"invitekit",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(renderInvitationTool, s.handleRenderInvitation)
	s.mcp.AddTool(validateInvitationTool, s.handleValidateInvitation)
	s.mcp.AddTool(exportInvitationTool, s.handleExportInvitation)
	s.mcp.AddTool(listThemesTool, s.handleListThemes)
	s.mcp.AddTool(listExportsTool, s.handleListExports)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
