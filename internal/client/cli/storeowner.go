package cli

import (
	"context"
	"fmt"
)

// ownerDashboard shows the owner's store summary and the ratings it has
// received.
func (a *App) ownerDashboard(ctx context.Context) error {
	dash, err := a.api.OwnerDashboard(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load dashboard: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Store:   %s\n", dash.Store.Name)
	fmt.Fprintf(a.out, "Address: %s\n", dash.Store.Address)
	fmt.Fprintf(a.out, "Rating:  %s, based on %d rating(s)\n", stars(dash.Store.AvgRating), dash.Store.TotalRatings)
	fmt.Fprintln(a.out)
	renderRatings(a.out, dash.Ratings)
	return nil
}
