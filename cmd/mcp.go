package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/invitekit/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools that render, validate and export the invitation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "invitekit MCP server started on stdio (invitation=%s, output=%s)\n", cfg.Invitation, cfg.OutputDir)

		srv := mcpserver.NewServer(mcpserver.Options{
			InvitationPath: cfg.Invitation,
			OutputDir:      cfg.OutputDir,
			Placeholder:    cfg.PlaceholderImage,
			Packager:       newPackager(cfg, logger),
			History:        store,
		})
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
