package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/logging"
	"github.com/ziadkadry99/invitekit/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve a live preview that reloads whenever the invitation file is saved",
	Long: `Starts a local web server showing the rendered invitation. The page
reloads on every save of the invitation file, and /export downloads the
current snapshot as a zip archive.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("port", 0, "port to listen on (defaults to preview_port from the config)")
	previewCmd.Flags().Bool("open", false, "open the preview in the default browser")
	previewCmd.Flags().Bool("no-watch", false, "do not reload when the invitation file changes")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	inv, err := loadInvitation(cfg)
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.PreviewPort
	}

	database, store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	srv, err := preview.New(preview.Config{
		Port:        port,
		AllowAll:    cfg.AllowAllOrigins,
		Placeholder: cfg.PlaceholderImage,
		History:     store,
	}, inv, newPackager(cfg, logger), logging.Component(logger, "preview"))
	if err != nil {
		return fmt.Errorf("starting preview: %w", err)
	}

	if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch {
		stopWatch, err := preview.Watch(cfg.Invitation,
			func(next invitation.Config) {
				if err := srv.Update(next); err != nil {
					logger.Error().Err(err).Msg("re-rendering preview")
					return
				}
				for _, w := range next.Warnings() {
					logger.Warn().Msg(w)
				}
				logger.Info().Str("file", cfg.Invitation).Msg("preview reloaded")
			},
			func(err error) {
				logger.Warn().Err(err).Msg("invitation not reloaded")
			},
		)
		if err != nil {
			return err
		}
		defer stopWatch()
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down preview...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	open, _ := cmd.Flags().GetBool("open")
	fmt.Fprintf(os.Stderr, "invitekit preview v%s on http://%s\n", Version, srv.Addr())
	fmt.Fprintf(os.Stderr, "  Invitation: %s\n", cfg.Invitation)
	fmt.Fprintf(os.Stderr, "  History:    %s\n", database.Path())

	if err := srv.Start(open); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
