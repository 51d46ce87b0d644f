package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/archive"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "List the files of an exported archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		entries, err := archive.List(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		total := 0
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t  %s\n", e.Size, e.Name)
			total += e.Size
		}
		fmt.Fprintf(w, "%d\t  %d file(s)\n", total, len(entries))
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
