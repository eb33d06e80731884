package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/api"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
)

// promptListQuery collects optional filter and sort parameters. Blank
// answers leave the parameter out of the request.
func (a *App) promptListQuery(withEmail, withRole bool) (api.ListQuery, error) {
	var q api.ListQuery
	var err error

	if q.Name, err = getSimpleText(a.reader, "Filter by name (Enter to skip)", os.Stdout); err != nil {
		return q, err
	}
	if withEmail {
		if q.Email, err = getSimpleText(a.reader, "Filter by email (Enter to skip)", os.Stdout); err != nil {
			return q, err
		}
	}
	if q.Address, err = getSimpleText(a.reader, "Filter by address (Enter to skip)", os.Stdout); err != nil {
		return q, err
	}
	if withRole {
		if q.Role, err = getSimpleText(a.reader, "Filter by role (admin/user/store_owner, Enter to skip)", os.Stdout); err != nil {
			return q, err
		}
	}
	if q.SortField, err = getSimpleText(a.reader, "Sort by field (Enter to skip)", os.Stdout); err != nil {
		return q, err
	}
	if q.SortField != "" {
		dir, err := getSimpleText(a.reader, "Sort direction (asc/desc)", os.Stdout)
		if err != nil {
			return q, err
		}
		if dir == string(api.SortDesc) {
			q.SortDirection = api.SortDesc
		} else {
			q.SortDirection = api.SortAsc
		}
	}
	return q, nil
}

// Dashboard shows the landing screen of the logged-in role: platform
// counters for administrators, the store summary for store owners.
func (a *App) Dashboard(ctx context.Context) error {
	switch a.role() {
	case models.RoleAdmin:
		return a.adminDashboard(ctx)
	case models.RoleStoreOwner:
		return a.ownerDashboard(ctx)
	default:
		return nil
	}
}

func (a *App) adminDashboard(ctx context.Context) error {
	stats, err := a.api.DashboardStats(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load dashboard: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Total users:   %d\n", stats.TotalUsers)
	fmt.Fprintf(a.out, "Total stores:  %d\n", stats.TotalStores)
	fmt.Fprintf(a.out, "Total ratings: %d\n", stats.TotalRatings)
	return nil
}

// Users lists platform users with optional filters and sorting.
func (a *App) Users(ctx context.Context) error {
	q, err := a.promptListQuery(true, true)
	if err != nil {
		return err
	}

	users, err := a.api.Users(ctx, q)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load users: %s\n", err.Error())
		return err
	}
	renderUsers(a.out, users)
	return nil
}

func (a *App) adminStores(ctx context.Context) error {
	q, err := a.promptListQuery(true, false)
	if err != nil {
		return err
	}

	stores, err := a.api.Stores(ctx, q)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load stores: %s\n", err.Error())
		return err
	}
	renderStores(a.out, stores, false)
	return nil
}

// CreateUser collects the user-creation fields and posts them.
func (a *App) CreateUser(ctx context.Context) error {
	var req api.CreateUserRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Full name", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if req.Address, err = getSimpleText(a.reader, "Address", os.Stdout); err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (admin/user/store_owner)", os.Stdout)
	if err != nil {
		return err
	}
	req.Role = models.Role(role)
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	req.Password = password

	user, err := a.api.CreateUser(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to create user: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Created user #%d (%s)\n", user.ID, user.Email)
	return nil
}

// CreateStore collects the store-creation fields and posts them. The owner
// email is optional and links the store to an existing store-owner account.
func (a *App) CreateStore(ctx context.Context) error {
	var req api.CreateStoreRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Store name", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Store email", os.Stdout); err != nil {
		return err
	}
	if req.Address, err = getSimpleText(a.reader, "Store address", os.Stdout); err != nil {
		return err
	}
	if req.OwnerEmail, err = getSimpleText(a.reader, "Owner email (Enter to skip)", os.Stdout); err != nil {
		return err
	}

	store, err := a.api.CreateStore(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to create store: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Created store #%d (%s)\n", store.ID, store.Name)
	return nil
}
