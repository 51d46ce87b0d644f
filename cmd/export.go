package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/history"
	"github.com/ziadkadry99/invitekit/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Package the invitation site into a zip archive",
	Long: `Renders the invitation, downloads remote media and writes a zip archive
holding index.html, guest.html, style.css, script.js, README.md, the favicon
and every media file. Media that cannot be packaged is left out and noted in
the archive's README.md.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "output directory (defaults to output_dir from the config)")
	exportCmd.Flags().String("name", "", "archive file name (defaults to one derived from the couple names)")
	exportCmd.Flags().Bool("no-history", false, "do not record this export in the history database")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	inv, err := loadInvitation(cfg)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = archive.ArchiveName(inv.CoupleNames)
	}
	path := filepath.Join(outDir, name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	packager := newPackager(cfg, logger)
	packager.Reporter = progress.NewReporter()

	report, err := packager.WriteFile(ctx, path, inv)
	if err != nil {
		return fmt.Errorf("exporting invitation: %w", err)
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		database, store, err := openHistory(cfg)
		if err != nil {
			logger.Warn().Err(err).Msg("export not recorded")
		} else {
			defer database.Close()
			if _, err := store.Record(ctx, history.FromReport(history.SourceCLI, path, inv, report)); err != nil {
				logger.Warn().Err(err).Msg("export not recorded")
			}
		}
	}

	fmt.Printf("\nExport complete in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("  Archive: %s\n", path)
	fmt.Printf("  Files:   %d (%d bytes uncompressed)\n", len(report.Entries), report.Size())
	if verbose {
		for _, e := range report.Entries {
			fmt.Printf("    %-24s %d\n", e.Name, e.Size)
		}
	}
	if len(report.Omissions) > 0 {
		fmt.Printf("  Omitted: %d\n", len(report.Omissions))
		for _, o := range report.Omissions {
			fmt.Printf("    %s: %s\n", o.Role, o.Reason)
		}
	}
	return nil
}
