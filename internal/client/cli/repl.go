package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAuthenticated() bool
	role() models.Role
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	Stores(ctx context.Context) error
	CreateUser(ctx context.Context) error
	CreateStore(ctx context.Context) error
	Rate(ctx context.Context) error
}

// commandRoles lists which roles may run each role-gated command.
var commandRoles = map[string][]models.Role{
	"dashboard":   {models.RoleAdmin, models.RoleStoreOwner},
	"users":       {models.RoleAdmin},
	"stores":      {models.RoleAdmin, models.RoleUser},
	"createuser":  {models.RoleAdmin},
	"createstore": {models.RoleAdmin},
	"rate":        {models.RoleUser},
}

func roleAllowed(cmd string, role models.Role) bool {
	allowed, ok := commandRoles[cmd]
	if !ok {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func helpText(a execIface) string {
	if !a.isAuthenticated() {
		return "Available commands: login, register, exit"
	}
	common := "profile, edit, password, logout, exit"
	switch a.role() {
	case models.RoleAdmin:
		return "Available commands: dashboard, users, stores, createuser, createstore, " + common
	case models.RoleUser:
		return "Available commands: stores, rate, " + common
	case models.RoleStoreOwner:
		return "Available commands: dashboard, " + common
	default:
		return "Available commands: " + common
	}
}

// runREPL starts the shell loop: read a line, parse the first token as the
// command, and dispatch to methods on 'a'. Unknown commands are reported
// back to the user; role-gated commands are refused for other roles. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sr %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			printlnFn(helpText(a))
			continue
		}

		if !a.isAuthenticated() {
			switch cmd {
			case "login":
				_ = a.Login(ctx)
			case "register":
				_ = a.Register(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		if !roleAllowed(cmd, a.role()) {
			printlnFn("Command not available for your role:", cmd)
			continue
		}

		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "password":
			_ = a.ChangePassword(ctx)
		case "profile", "whoami":
			_ = a.Profile(ctx)
		case "edit":
			_ = a.EditProfile(ctx)
		case "dashboard":
			_ = a.Dashboard(ctx)
		case "users":
			_ = a.Users(ctx)
		case "stores":
			_ = a.Stores(ctx)
		case "createuser":
			_ = a.CreateUser(ctx)
		case "createstore":
			_ = a.CreateStore(ctx)
		case "rate":
			_ = a.Rate(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
