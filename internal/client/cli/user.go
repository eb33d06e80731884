package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
)

// Stores is role-sensitive: administrators get the management listing,
// end users browse stores with their rating information.
func (a *App) Stores(ctx context.Context) error {
	if a.role() == models.RoleAdmin {
		return a.adminStores(ctx)
	}
	return a.browseStores(ctx)
}

func (a *App) browseStores(ctx context.Context) error {
	q, err := a.promptListQuery(false, false)
	if err != nil {
		return err
	}

	stores, err := a.api.UserStores(ctx, q)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load stores: %s\n", err.Error())
		return err
	}
	renderStores(a.out, stores, true)
	return nil
}

// Rate submits a 1-5 star rating for a store. Submitting again for the
// same store overwrites the previous rating.
func (a *App) Rate(ctx context.Context) error {
	storeID, err := GetInt(a.reader, "Store ID", 1, int(^uint(0)>>1), os.Stdout)
	if err != nil {
		return err
	}
	rating, err := GetInt(a.reader, "Rating (1-5)", 1, 5, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.SubmitRating(ctx, int64(storeID), rating); err != nil {
		fmt.Fprintf(a.out, "Failed to submit rating: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Rating saved.")
	return nil
}
