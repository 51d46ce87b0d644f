package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/config"
	"github.com/ziadkadry99/invitekit/internal/db"
	"github.com/ziadkadry99/invitekit/internal/history"
	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `invitekit init` to create a config file", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the stderr logger for the given config. Stdout stays
// free for command output and the MCP protocol.
func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(cfg.LogLevel, os.Stderr)
}

// loadInvitation reads the invitation file named by the config.
func loadInvitation(cfg *config.Config) (invitation.Config, error) {
	inv, err := invitation.Load(cfg.Invitation)
	if err != nil {
		return inv, fmt.Errorf("%w\nRun `invitekit init` to create an invitation file", err)
	}
	return inv, nil
}

// newPackager builds a packager that fetches remote media over HTTP.
func newPackager(cfg *config.Config, logger zerolog.Logger) *archive.Packager {
	fetcher := assets.NewHTTPFetcher(cfg.AssetBaseURL, cfg.FetchTimeout)
	return archive.New(fetcher, logging.Component(logger, "archive"))
}

// openHistory opens the export history database. The caller closes the
// returned database.
func openHistory(cfg *config.Config) (*db.DB, *history.Store, error) {
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return database, history.NewStore(database), nil
}
