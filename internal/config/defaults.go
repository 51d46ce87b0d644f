package config

import (
	"time"

	"github.com/ziadkadry99/invitekit/internal/assets"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".invitekit.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Invitation:       "invitation.yml",
		OutputDir:        "dist",
		PlaceholderImage: assets.DefaultPlaceholder,
		FetchTimeout:     60 * time.Second,
		PreviewPort:      8080,
		HistoryDB:        ".invitekit/history.db",
		LogLevel:         "info",
	}
}
