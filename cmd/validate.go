package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "List the settings that will be overridden or corrected at render time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		inv, err := loadInvitation(cfg)
		if err != nil {
			return err
		}

		warnings := inv.Warnings()
		if len(warnings) == 0 {
			fmt.Printf("%s renders as written.\n", cfg.Invitation)
			return nil
		}
		fmt.Printf("%s has %d warning(s):\n", cfg.Invitation, len(warnings))
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return fmt.Errorf("%d warning(s)", len(warnings))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "exit with an error when there are warnings")
	rootCmd.AddCommand(validateCmd)
}
