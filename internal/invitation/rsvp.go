package invitation

// RSVPSummary counts guest responses.
type RSVPSummary struct {
	Attending int
	Declined  int
	Pending   int
	// Headcount is the number of people expected, summing NumberOfGuests
	// (minimum 1) over attending guests.
	Headcount int
}

// SummarizeGuests tallies the responses in guests.
func SummarizeGuests(guests []Guest) RSVPSummary {
	var s RSVPSummary
	for _, g := range guests {
		switch {
		case g.Attending == nil:
			s.Pending++
		case *g.Attending:
			s.Attending++
			n := g.NumberOfGuests
			if n < 1 {
				n = 1
			}
			s.Headcount += n
		default:
			s.Declined++
		}
	}
	return s
}
