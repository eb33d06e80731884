package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
)

// stars renders an average rating as a five-star bar, e.g. "★★★★☆ (4.2)".
func stars(avg float64) string {
	if avg <= 0 {
		return "no ratings yet"
	}
	full := int(avg + 0.5)
	if full > 5 {
		full = 5
	}
	return fmt.Sprintf("%s%s (%.1f)", strings.Repeat("★", full), strings.Repeat("☆", 5-full), avg)
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tADDRESS")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.Address)
	}
	tw.Flush()
}

func renderStores(w io.Writer, stores []models.Store, withRatings bool) {
	if len(stores) == 0 {
		fmt.Fprintln(w, "No stores found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if withRatings {
		fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tRATING\tYOUR RATING")
		for _, s := range stores {
			mine := "-"
			if s.UserRating > 0 {
				mine = fmt.Sprintf("%d", s.UserRating)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Address, stars(s.AvgRating), mine)
		}
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tADDRESS")
		for _, s := range stores {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.Address)
		}
	}
	tw.Flush()
}

func renderRatings(w io.Writer, ratings []models.Rating) {
	if len(ratings) == 0 {
		fmt.Fprintln(w, "Your store hasn't received any ratings yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USER\tRATING\tDATE")
	for _, r := range ratings {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.UserName, r.Rating, r.CreatedAt)
	}
	tw.Flush()
}
