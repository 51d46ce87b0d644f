package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the invitation site into a directory",
	Long: `Renders index.html, guest.html, style.css, script.js and README.md into
the output directory, together with the favicon and every embedded image.
Remote music is only downloaded by ` + "`invitekit export`" + `.

With --standalone, writes the single-file preview document instead.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("out", "", "output directory (defaults to output_dir from the config)")
	renderCmd.Flags().String("standalone", "", "write the single-file preview document to this path")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	inv, err := loadInvitation(cfg)
	if err != nil {
		return err
	}
	for _, w := range inv.Warnings() {
		logger.Warn().Msg(w)
	}

	if standalone, _ := cmd.Flags().GetString("standalone"); standalone != "" {
		if err := writeFile(standalone, []byte(render.Standalone(inv, cfg.PlaceholderImage))); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", standalone)
		return nil
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	plan := assets.Plan(inv)
	for _, e := range plan.Errors {
		logger.Warn().Str("role", e.Role).Err(e.Err).Msg("media left out")
	}

	bundle := render.Render(inv, plan.Refs, nil)
	for _, f := range bundle.Files {
		if err := writeFile(filepath.Join(outDir, f.Name), f.Data); err != nil {
			return err
		}
	}
	if err := writeFile(filepath.Join(outDir, archive.FaviconFile), render.Favicon()); err != nil {
		return err
	}
	for _, f := range plan.Files {
		if err := writeFile(filepath.Join(outDir, f.Name), f.Data); err != nil {
			return err
		}
	}

	logger.Debug().Str("dir", outDir).Int("media", len(plan.Files)).Msg("render complete")
	fmt.Printf("Rendered %d files to %s\n", len(bundle.Files)+1+len(plan.Files), outDir)
	if len(plan.Fetches) > 0 {
		fmt.Printf("%d remote asset(s) are only packaged by `invitekit export`.\n", len(plan.Fetches))
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
