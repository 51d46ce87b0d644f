package config

import "time"

// Config is the top-level invitekit configuration, corresponding to .invitekit.yml.
type Config struct {
	Invitation       string        `yaml:"invitation" koanf:"invitation"`
	OutputDir        string        `yaml:"output_dir" koanf:"output_dir"`
	PlaceholderImage string        `yaml:"placeholder_image" koanf:"placeholder_image"`
	AssetBaseURL     string        `yaml:"asset_base_url" koanf:"asset_base_url"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	PreviewPort      int           `yaml:"preview_port" koanf:"preview_port"`
	HistoryDB        string        `yaml:"history_db" koanf:"history_db"`
	LogLevel         string        `yaml:"log_level" koanf:"log_level"`
	AllowAllOrigins  bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
