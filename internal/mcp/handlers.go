package mcp

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/history"
	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/render"
)

// loadInvitation decodes the inline invitation argument, or loads the
// project invitation file when the argument is absent.
func (s *Server) loadInvitation(request mcp.CallToolRequest) (invitation.Config, error) {
	doc := strings.TrimSpace(request.GetString("invitation", ""))
	if doc != "" {
		return invitation.Parse([]byte(doc), strings.HasPrefix(doc, "{"))
	}
	if s.opts.InvitationPath == "" {
		return invitation.Default(), nil
	}
	return invitation.Load(s.opts.InvitationPath)
}

// handleRenderInvitation renders one generated file and returns it as text.
func (s *Server) handleRenderInvitation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := s.loadInvitation(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid invitation: %v", err)), nil
	}

	file := request.GetString("file", "standalone")
	if file == "standalone" {
		return mcp.NewToolResultText(render.Standalone(cfg, s.opts.Placeholder)), nil
	}

	bundle := render.Render(cfg, assets.Plan(cfg).Refs, nil)
	data, ok := bundle.File(file)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown file %q", file)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleValidateInvitation lists the warnings of an invitation.
func (s *Server) handleValidateInvitation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := s.loadInvitation(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid invitation: %v", err)), nil
	}

	warnings := cfg.Warnings()
	if len(warnings) == 0 {
		return mcp.NewToolResultText("The invitation renders as written."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warning(s):\n", len(warnings)))
	for _, w := range warnings {
		sb.WriteString("- " + w + "\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleExportInvitation packages an invitation into the output directory.
func (s *Server) handleExportInvitation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.opts.Packager == nil {
		return mcp.NewToolResultError("exporting is not configured on this server"), nil
	}
	cfg, err := s.loadInvitation(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid invitation: %v", err)), nil
	}

	path := filepath.Join(s.opts.OutputDir, archive.ArchiveName(cfg.CoupleNames))
	report, err := s.opts.Packager.WriteFile(ctx, path, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}

	if s.opts.History != nil {
		if _, err := s.opts.History.Record(ctx, history.FromReport(history.SourceMCP, path, cfg, report)); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("export written to %s but not recorded: %v", path, err)), nil
		}
	}

	return mcp.NewToolResultText(formatReport(path, report)), nil
}

// handleListThemes describes every catalog an invitation can pick from.
func (s *Server) handleListThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder

	sb.WriteString("Glow color themes:\n")
	for _, t := range invitation.ColorThemes {
		sb.WriteString(fmt.Sprintf("- %s\n", t))
	}

	sb.WriteString("\nDesign themes:\n")
	for _, d := range invitation.DesignThemes {
		sb.WriteString(fmt.Sprintf("- %s (%s): primary %s, secondary %s, background %s, font %s\n",
			d.ID, d.Name, d.PrimaryColor, d.SecondaryColor, d.BackgroundColor, d.FontFamily))
	}

	sb.WriteString("\nFonts:\n")
	for _, f := range invitation.Fonts {
		sb.WriteString("- " + f + "\n")
	}

	sb.WriteString("\nPreset backgrounds:\n")
	for _, p := range invitation.PresetBackgrounds {
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", p.ID, p.Name, p.Path))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleListExports lists recorded exports.
func (s *Server) handleListExports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.opts.History == nil {
		return mcp.NewToolResultError("export history is not available"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	exports, err := s.opts.History.List(ctx, history.Filter{Limit: limit})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing exports failed: %v", err)), nil
	}
	if len(exports) == 0 {
		return mcp.NewToolResultText("No exports recorded yet. Run `invitekit export` to create one."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d export(s):\n", len(exports)))
	for _, e := range exports {
		sb.WriteString(fmt.Sprintf("\n%s  %s  [%s]\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.ArchiveName, e.Source))
		if e.Path != "" {
			sb.WriteString(fmt.Sprintf("Path: %s\n", e.Path))
		}
		sb.WriteString(fmt.Sprintf("Entries: %d, %d bytes\n", e.EntryCount, e.SizeBytes))
		for _, o := range e.Omissions {
			sb.WriteString("Omitted: " + o + "\n")
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatReport summarizes one export for the calling agent.
func formatReport(path string, report *archive.Report) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Wrote %s (%d files, %d bytes)\n", path, len(report.Entries), report.Size())
	for _, e := range report.Entries {
		fmt.Fprintf(&buf, "  %s (%d bytes)\n", e.Name, e.Size)
	}
	if len(report.Omissions) > 0 {
		buf.WriteString("\nOmitted:\n")
		for _, o := range report.Omissions {
			fmt.Fprintf(&buf, "  %s: %s\n", o.Role, o.Reason)
		}
	}
	return buf.String()
}
