package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List exported invitation archives",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		source, _ := cmd.Flags().GetString("source")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		exports, err := store.List(context.Background(), history.Filter{
			Source: history.Source(source),
			Limit:  limit,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			if exports == nil {
				exports = []history.Export{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(exports)
		}

		if len(exports) == 0 {
			fmt.Println("No exports recorded yet. Run `invitekit export` to create one.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tSOURCE\tARCHIVE\tFILES\tBYTES\tOMITTED")
		for _, e := range exports {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"), e.Source, e.ArchiveName,
				e.EntryCount, e.SizeBytes, len(e.Omissions))
		}
		return w.Flush()
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete history records older than a given age",
	RunE: func(cmd *cobra.Command, args []string) error {
		olderThan, _ := cmd.Flags().GetDuration("older-than")
		if olderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		n, err := store.DeleteBefore(context.Background(), time.Now().Add(-olderThan))
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d record(s)\n", n)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of exports to list")
	historyCmd.Flags().String("source", "", "only list exports from cli, preview or mcp")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyPruneCmd.Flags().Duration("older-than", 30*24*time.Hour, "age of the records to delete")
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
