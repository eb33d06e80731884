package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
)

// Profile prints the logged-in user record.
func (a *App) Profile(ctx context.Context) error {
	user := a.session.Current()
	if user == nil {
		return nil
	}
	fmt.Fprintf(a.out, "Name:    %s\n", user.Name)
	fmt.Fprintf(a.out, "Email:   %s\n", user.Email)
	fmt.Fprintf(a.out, "Role:    %s\n", user.Role)
	if user.Address != "" {
		fmt.Fprintf(a.out, "Address: %s\n", user.Address)
	}
	return nil
}

// EditProfile collects new values for the editable profile fields. Blank
// input keeps the current value; only the changed fields are merged into
// the persisted record.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.session.Current()
	if user == nil {
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s] (Enter to keep)", user.Name), os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, fmt.Sprintf("Address [%s] (Enter to keep)", user.Address), os.Stdout)
	if err != nil {
		return err
	}

	var update models.ProfileUpdate
	if name != "" {
		update.Name = &name
	}
	if address != "" {
		update.Address = &address
	}
	if update.Name == nil && update.Address == nil {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	if err := a.session.UpdateProfile(ctx, update); err != nil {
		fmt.Fprintf(a.out, "Profile update failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
