package mcp

import "github.com/mark3labs/mcp-go/mcp"

// invitationArg is shared by every tool that works on an invitation.
var invitationArg = mcp.WithString("invitation",
	mcp.Description("Invitation document as YAML or JSON. Defaults to the project's invitation file."),
)

// renderInvitationTool defines the render_invitation MCP tool.
var renderInvitationTool = mcp.NewTool("render_invitation",
	mcp.WithDescription("Render one generated file of a wedding invitation and return its text."),
	invitationArg,
	mcp.WithString("file",
		mcp.Description("Which file to render (default standalone)"),
		mcp.Enum("standalone", "index.html", "guest.html", "style.css", "script.js", "README.md"),
	),
)

// validateInvitationTool defines the validate_invitation MCP tool.
var validateInvitationTool = mcp.NewTool("validate_invitation",
	mcp.WithDescription("Check an invitation and list the settings that will be overridden or corrected when it is rendered."),
	invitationArg,
)

// exportInvitationTool defines the export_invitation MCP tool.
var exportInvitationTool = mcp.NewTool("export_invitation",
	mcp.WithDescription("Package an invitation into a deployable zip archive in the output directory."),
	invitationArg,
)

// listThemesTool defines the list_themes MCP tool.
var listThemesTool = mcp.NewTool("list_themes",
	mcp.WithDescription("List the glow color themes, design themes, fonts and preset backgrounds an invitation can use."),
)

// listExportsTool defines the list_exports MCP tool.
var listExportsTool = mcp.NewTool("list_exports",
	mcp.WithDescription("List previously exported invitation archives, newest first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of exports to return (default 10)"),
	),
)
