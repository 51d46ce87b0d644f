package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Invitation != "invitation.yml" {
		t.Errorf("expected default invitation %q, got %q", "invitation.yml", cfg.Invitation)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.FetchTimeout != 60*time.Second {
		t.Errorf("expected default fetch_timeout 60s, got %s", cfg.FetchTimeout)
	}
	if cfg.PreviewPort != 8080 {
		t.Errorf("expected default preview_port 8080, got %d", cfg.PreviewPort)
	}
	if cfg.PlaceholderImage != "/placeholder.svg?height=200&width=200" {
		t.Errorf("unexpected placeholder %q", cfg.PlaceholderImage)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.invitekit.yml")

	original := DefaultConfig()
	original.Invitation = "wedding.json"
	original.OutputDir = "public"
	original.FetchTimeout = 15 * time.Second
	original.PreviewPort = 9000
	original.AssetBaseURL = "https://invite.example.com"
	original.AllowAllOrigins = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("INVITEKIT_OUTPUT_DIR", "site")
	t.Setenv("INVITEKIT_PREVIEW_PORT", "9999")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "site" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "site")
	}
	if loaded.PreviewPort != 9999 {
		t.Errorf("env override failed: got %d, want 9999", loaded.PreviewPort)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("INVITEKIT_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// t.Setenv restores the variable godotenv sets for the process.
	t.Setenv("INVITEKIT_LOG_LEVEL", "")
	os.Unsetenv("INVITEKIT_LOG_LEVEL")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("log_level from .env = %q, want debug", loaded.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty invitation", func(c *Config) { c.Invitation = "" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"port zero", func(c *Config) { c.PreviewPort = 0 }, true},
		{"port too high", func(c *Config) { c.PreviewPort = 70000 }, true},
		{"negative timeout", func(c *Config) { c.FetchTimeout = -time.Second }, true},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"upper log level", func(c *Config) { c.LogLevel = "WARN" }, false},
		{"bad base url", func(c *Config) { c.AssetBaseURL = "ftp://x" }, true},
		{"good base url", func(c *Config) { c.AssetBaseURL = "https://x.example" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWizardValidators(t *testing.T) {
	if validateDate("2025-06-01") != nil || validateDate("") != nil {
		t.Error("valid dates rejected")
	}
	if validateDate("06/01/2025") == nil {
		t.Error("invalid date accepted")
	}
	if validateTime("18:30") != nil || validateTime("") != nil {
		t.Error("valid times rejected")
	}
	if validateTime("6pm") == nil {
		t.Error("invalid time accepted")
	}
}
