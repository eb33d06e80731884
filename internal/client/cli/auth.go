package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates against the backend and
// adopts the returned identity as the active session. On success the shell
// navigates to the role's dashboard route.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	if err := a.session.Login(ctx, resp.User, resp.Token); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	a.navigate()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
	return nil
}

// Register prompts for the sign-up fields and creates an account. The
// backend logs the new user in immediately, so the returned identity is
// adopted just like after Login.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, api.Registration{
		Name:     name,
		Email:    email,
		Password: password,
		Address:  address,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		return err
	}

	if err := a.session.Login(ctx, resp.User, resp.Token); err != nil {
		return err
	}

	a.navigate()
	fmt.Fprintf(a.out, "Welcome, %s!\n", resp.User.Name)
	return nil
}

// Logout clears the session and returns the shell to the login route.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err.Error())
		return err
	}
	a.navigate()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// ChangePassword updates the password of the logged-in user.
func (a *App) ChangePassword(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.UpdatePassword(ctx, password); err != nil {
		fmt.Fprintf(a.out, "Password update failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Password updated.")
	return nil
}
