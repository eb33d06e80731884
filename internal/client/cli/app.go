package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/api"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/config"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/session"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/storage"
	"github.com/ChetanGaurkhede/client-store-rating/internal/logging"
)

// App wires the session store, the API client and the terminal shell
// together and tracks the current route.
type App struct {
	config  *config.Config
	api     api.Service
	session *session.Store
	log     logging.Logger
	db      *sql.DB

	reader *bufio.Reader
	out    io.Writer
	route  string
}

// NewApp builds the application: opens the local session database, creates
// the API client and the session store, and cross-wires the 401 teardown
// path (API client → session teardown → shell navigation to login).
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	repos, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	apiClient := api.NewClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)
	sess := session.NewStore(repos.DB, apiClient, log)
	apiClient.SetUnauthorizedHandler(sess.HandleUnauthorized)

	app := &App{
		config:  cfg,
		api:     apiClient,
		session: sess,
		log:     log,
		db:      repos.DB,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		route:   session.RouteLogin,
	}
	sess.SetResetHandler(app.onSessionReset)

	return app, nil
}

// Run restores any persisted session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed, starting anonymous", "error", err)
	}
	a.navigate()

	if user := a.session.Current(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	}
	fmt.Fprintln(a.out, "Store Rating client (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))

	return a.Close()
}

// Close releases the local database.
func (a *App) Close() error {
	return a.db.Close()
}

// navigate resolves the current route from the logged-in role.
func (a *App) navigate() {
	a.route = session.DashboardRoute(a.session.Current())
}

// onSessionReset is subscribed to the session teardown signal: the shell
// falls back to the login route no matter what screen it was on.
func (a *App) onSessionReset() {
	a.route = session.RouteLogin
	fmt.Fprintln(a.out, "Session expired, please log in again.")
}

func (a *App) getStatus() string {
	s := a.route
	if user := a.session.Current(); user != nil {
		s = fmt.Sprintf("%s (%s)", s, user.Email)
	}
	return s
}

func (a *App) isAuthenticated() bool {
	return a.session.IsAuthenticated()
}

func (a *App) role() models.Role {
	if user := a.session.Current(); user != nil {
		return user.Role
	}
	return ""
}
