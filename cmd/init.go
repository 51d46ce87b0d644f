package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an invitation and invitekit configuration with an interactive wizard",
	Long: `Runs an interactive wizard that asks for the couple, the date and the
venue, lets you pick a color and design theme, and writes invitation.yml
and .invitekit.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
