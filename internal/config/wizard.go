package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

// noDesignTheme is the first design theme choice and keeps the defaults.
const noDesignTheme = "none (keep default colors)"

// validateDate accepts an empty answer or a YYYY-MM-DD date.
func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errors.New("use the YYYY-MM-DD format")
	}
	return nil
}

// validateTime accepts an empty answer or an HH:MM time.
func validateTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return errors.New("use the HH:MM format")
	}
	return nil
}

// RunWizard runs an interactive setup wizard. It writes .invitekit.yml and a
// starter invitation file, and returns both.
func RunWizard() (*Config, invitation.Config, error) {
	fmt.Println("Welcome to invitekit! Let's set up your invitation.")
	fmt.Println()

	inv := invitation.Default()

	// 1. Couple names.
	namesPrompt := promptui.Prompt{
		Label:   "Couple names",
		Default: inv.CoupleNames,
	}
	names, err := namesPrompt.Run()
	if err != nil {
		return nil, inv, fmt.Errorf("couple names: %w", err)
	}

	// 2. Date and time.
	datePrompt := promptui.Prompt{
		Label:    "Event date (YYYY-MM-DD)",
		Default:  inv.EventDate,
		Validate: validateDate,
	}
	date, err := datePrompt.Run()
	if err != nil {
		return nil, inv, fmt.Errorf("event date: %w", err)
	}
	timePrompt := promptui.Prompt{
		Label:    "Event time (HH:MM)",
		Default:  inv.EventTime,
		Validate: validateTime,
	}
	eventTime, err := timePrompt.Run()
	if err != nil {
		return nil, inv, fmt.Errorf("event time: %w", err)
	}

	// 3. Venue.
	venuePrompt := promptui.Prompt{
		Label:   "Venue",
		Default: inv.EventLocation,
	}
	venue, err := venuePrompt.Run()
	if err != nil {
		return nil, inv, fmt.Errorf("venue: %w", err)
	}

	// 4. Glow color theme.
	themeItems := make([]string, len(invitation.ColorThemes))
	for i, t := range invitation.ColorThemes {
		themeItems[i] = string(t)
	}
	themePrompt := promptui.Select{
		Label: "Select glow color theme",
		Items: themeItems,
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, inv, fmt.Errorf("color theme: %w", err)
	}

	// 5. Design theme.
	designItems := []string{noDesignTheme}
	for _, d := range invitation.DesignThemes {
		designItems = append(designItems, d.ID)
	}
	designPrompt := promptui.Select{
		Label: "Select design theme",
		Items: designItems,
	}
	designIdx, design, err := designPrompt.Run()
	if err != nil {
		return nil, inv, fmt.Errorf("design theme: %w", err)
	}

	inv = inv.With(func(c *invitation.Config) {
		c.CoupleNames = names
		c.EventDate = date
		c.EventTime = eventTime
		c.EventLocation = venue
		c.ColorTheme = invitation.ColorThemes[themeIdx]
	})
	if designIdx > 0 {
		if inv, err = inv.ApplyDesignTheme(design); err != nil {
			return nil, inv, err
		}
	}

	// 6. Output directory.
	cfg := DefaultConfig()
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for rendered invitations",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, inv, fmt.Errorf("output dir: %w", err)
	}

	if _, err := os.Stat(cfg.Invitation); err == nil {
		fmt.Printf("\nNote: %s already exists and was left unchanged.\n", cfg.Invitation)
	} else if err := inv.Save(cfg.Invitation); err != nil {
		return nil, inv, fmt.Errorf("saving invitation: %w", err)
	}

	if err := cfg.Save(FileName); err != nil {
		return nil, inv, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", FileName)
	return cfg, inv, nil
}
