package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List glow color themes, design themes, fonts and preset backgrounds",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		fmt.Fprintln(w, "COLOR THEMES")
		for _, t := range invitation.ColorThemes {
			fmt.Fprintf(w, "  %s\n", t)
		}

		fmt.Fprintln(w, "\nDESIGN THEMES\tPRIMARY\tSECONDARY\tBACKGROUND\tFONT")
		for _, d := range invitation.DesignThemes {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", d.ID, d.PrimaryColor, d.SecondaryColor, d.BackgroundColor, d.FontFamily)
		}

		fmt.Fprintln(w, "\nFONTS")
		for _, f := range invitation.Fonts {
			fmt.Fprintf(w, "  %s\n", f)
		}

		fmt.Fprintln(w, "\nPRESET BACKGROUNDS\tPATH")
		for _, p := range invitation.PresetBackgrounds {
			fmt.Fprintf(w, "  %s\t%s\n", p.ID, p.Path)
		}
		w.Flush()
	},
}

var applyThemeCmd = &cobra.Command{
	Use:   "apply-theme <design-theme>",
	Short: "Copy a design theme's palette and font into the invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editInvitation(func(inv invitation.Config) (invitation.Config, error) {
			return inv.ApplyDesignTheme(args[0])
		})
	},
}

var setBackgroundCmd = &cobra.Command{
	Use:   "set-background <preset>",
	Short: "Select a preset background by id or path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, ok := invitation.LookupPreset(args[0])
		if !ok {
			return fmt.Errorf("unknown preset background %q; run `invitekit themes` to list them", args[0])
		}
		return editInvitation(func(inv invitation.Config) (invitation.Config, error) {
			return inv.SetPresetBackground(preset.Path), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(themesCmd, applyThemeCmd, setBackgroundCmd)
}
