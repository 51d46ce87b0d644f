package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/invitation"
)

var guestsCmd = &cobra.Command{
	Use:   "guests",
	Short: "Show the guest list and RSVP totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		inv, err := loadInvitation(cfg)
		if err != nil {
			return err
		}
		if len(inv.Guests) == 0 {
			fmt.Println("No guests yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tSTATUS\tGUESTS")
		for _, g := range inv.Guests {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", g.Name, g.Email, g.Phone, rsvpStatus(g), g.NumberOfGuests)
		}
		w.Flush()

		s := invitation.SummarizeGuests(inv.Guests)
		fmt.Printf("\n%d attending, %d declined, %d pending; %d people expected\n",
			s.Attending, s.Declined, s.Pending, s.Headcount)
		return nil
	},
}

func rsvpStatus(g invitation.Guest) string {
	switch {
	case g.Attending == nil:
		return "pending"
	case *g.Attending:
		return "attending"
	}
	return "declined"
}

func init() {
	rootCmd.AddCommand(guestsCmd)
}
