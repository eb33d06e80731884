package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/api"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/config"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/session"
	"github.com/ChetanGaurkhede/client-store-rating/internal/logging"
)

// ---- fake API service ----

type fakeService struct {
	tokens []string

	loginResp    *api.AuthResponse
	loginErr     error
	registerResp *api.AuthResponse
	registerErr  error

	stats     *models.DashboardStats
	ownerDash *models.OwnerDashboard
	users     []models.User
	stores    []models.Store

	lastQuery       api.ListQuery
	lastPassword    string
	lastCreateUser  api.CreateUserRequest
	lastCreateStore api.CreateStoreRequest
	lastRatingStore int64
	lastRating      int
}

func (f *fakeService) SetAuthToken(token string) { f.tokens = append(f.tokens, token) }

func (f *fakeService) Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeService) Register(ctx context.Context, reg api.Registration) (*api.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeService) UpdatePassword(ctx context.Context, password string) error {
	f.lastPassword = password
	return nil
}

func (f *fakeService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return f.stats, nil
}

func (f *fakeService) CreateUser(ctx context.Context, req api.CreateUserRequest) (*models.User, error) {
	f.lastCreateUser = req
	return &models.User{ID: 10, Name: req.Name, Email: req.Email, Role: req.Role}, nil
}

func (f *fakeService) CreateStore(ctx context.Context, req api.CreateStoreRequest) (*models.Store, error) {
	f.lastCreateStore = req
	return &models.Store{ID: 20, Name: req.Name}, nil
}

func (f *fakeService) Users(ctx context.Context, q api.ListQuery) ([]models.User, error) {
	f.lastQuery = q
	return f.users, nil
}

func (f *fakeService) Stores(ctx context.Context, q api.ListQuery) ([]models.Store, error) {
	f.lastQuery = q
	return f.stores, nil
}

func (f *fakeService) UserStores(ctx context.Context, q api.ListQuery) ([]models.Store, error) {
	f.lastQuery = q
	return f.stores, nil
}

func (f *fakeService) SubmitRating(ctx context.Context, storeID int64, rating int) error {
	f.lastRatingStore = storeID
	f.lastRating = rating
	return nil
}

func (f *fakeService) OwnerDashboard(ctx context.Context) (*models.OwnerDashboard, error) {
	return f.ownerDash, nil
}

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS state (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

// newTestApp builds an App over a fake API service, scripted stdin input
// and a captured output buffer.
func newTestApp(t *testing.T, f *fakeService, input string) (*App, *bytes.Buffer) {
	t.Helper()

	db := setupDB(t)
	sess := session.NewStore(db, f, testLogger())

	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()

	app := &App{
		config:  cfg,
		api:     f,
		session: sess,
		log:     testLogger(),
		db:      db,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
		route:   session.RouteLogin,
	}
	sess.SetResetHandler(app.onSessionReset)

	require.NoError(t, sess.Restore(context.Background()))
	return app, &out
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	old := getPassword
	getPassword = func(w io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() { getPassword = old })
}

// ---- tests ----

func TestApp_LoginNavigatesToRoleDashboard(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{
		loginResp: &api.AuthResponse{
			User:  models.User{ID: 1, Name: "Alice", Email: "a@b.com", Role: models.RoleAdmin},
			Token: "tok-1",
		},
	}
	stubPassword(t, "secret")
	app, out := newTestApp(t, f, "a@b.com\n")

	require.NoError(t, app.Login(ctx))

	require.True(t, app.isAuthenticated())
	require.Equal(t, session.RouteAdmin, app.route)
	require.Equal(t, "tok-1", f.tokens[len(f.tokens)-1])
	require.Contains(t, out.String(), "Logged in as Alice")
}

func TestApp_FailedLoginStaysAnonymous(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{loginErr: errFake("Invalid credentials")}
	stubPassword(t, "wrong")
	app, out := newTestApp(t, f, "a@b.com\n")

	require.Error(t, app.Login(ctx))
	require.False(t, app.isAuthenticated())
	require.Equal(t, session.RouteLogin, app.route)
	require.Contains(t, out.String(), "Invalid credentials")
}

func TestApp_RegisterAdoptsSession(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{
		registerResp: &api.AuthResponse{
			User:  models.User{ID: 2, Name: "Bob", Email: "b@b.com", Role: models.RoleUser},
			Token: "tok-2",
		},
	}
	stubPassword(t, "secret")
	app, _ := newTestApp(t, f, "Bob Builder\nb@b.com\nMain St 5\n")

	require.NoError(t, app.Register(ctx))
	require.True(t, app.isAuthenticated())
	require.Equal(t, session.RouteUser, app.route)
}

func TestApp_LogoutReturnsToLoginRoute(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{}
	app, _ := newTestApp(t, f, "")

	require.NoError(t, app.session.Login(ctx, models.User{ID: 1, Role: models.RoleAdmin}, "tok"))
	app.navigate()
	require.Equal(t, session.RouteAdmin, app.route)

	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isAuthenticated())
	require.Equal(t, session.RouteLogin, app.route)
	require.Equal(t, "", f.tokens[len(f.tokens)-1])
}

func TestApp_SessionResetNavigatesToLogin(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, &fakeService{}, "")

	require.NoError(t, app.session.Login(ctx, models.User{ID: 1, Role: models.RoleUser}, "tok"))
	app.navigate()

	app.session.HandleUnauthorized()

	require.Equal(t, session.RouteLogin, app.route)
	require.Contains(t, out.String(), "Session expired")
}

func TestApp_ChangePassword(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{}
	stubPassword(t, "n3w-pass")
	app, out := newTestApp(t, f, "")

	require.NoError(t, app.ChangePassword(ctx))
	require.Equal(t, "n3w-pass", f.lastPassword)
	require.Contains(t, out.String(), "Password updated")
}

func TestApp_RateSubmitsRating(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{}
	app, out := newTestApp(t, f, "42\n5\n")

	require.NoError(t, app.Rate(ctx))
	require.Equal(t, int64(42), f.lastRatingStore)
	require.Equal(t, 5, f.lastRating)
	require.Contains(t, out.String(), "Rating saved")
}

func TestApp_RateRejectsOutOfRangeThenAccepts(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{}
	app, _ := newTestApp(t, f, "7\n9\n3\n")

	// first input is the store id; the rating re-prompts until valid
	require.NoError(t, app.Rate(ctx))
	require.Equal(t, int64(7), f.lastRatingStore)
	require.Equal(t, 3, f.lastRating)
}

func TestApp_CreateStoreOptionalOwnerEmail(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{}
	app, _ := newTestApp(t, f, "Coffee Corner\nshop@example.com\nMarket Sq 2\n\n")

	require.NoError(t, app.CreateStore(ctx))
	require.Equal(t, "Coffee Corner", f.lastCreateStore.Name)
	require.Empty(t, f.lastCreateStore.OwnerEmail)
}

func TestApp_CreateUserSendsRoleAndPassword(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{}
	stubPassword(t, "pw12345")
	app, _ := newTestApp(t, f, "Carol\nc@b.com\nElm St 3\nstore_owner\n")

	require.NoError(t, app.CreateUser(ctx))
	require.Equal(t, models.RoleStoreOwner, f.lastCreateUser.Role)
	require.Equal(t, "pw12345", f.lastCreateUser.Password)
}

func TestApp_UsersForwardsFiltersAndSort(t *testing.T) {
	ctx := context.Background()
	f := &fakeService{users: []models.User{{ID: 1, Name: "A"}}}
	// name, email, address, role, sortField, sortDirection
	app, out := newTestApp(t, f, "ali\n\n\nadmin\nname\ndesc\n")

	require.NoError(t, app.Users(ctx))
	require.Equal(t, "ali", f.lastQuery.Name)
	require.Empty(t, f.lastQuery.Email)
	require.Equal(t, "admin", f.lastQuery.Role)
	require.Equal(t, "name", f.lastQuery.SortField)
	require.Equal(t, api.SortDesc, f.lastQuery.SortDirection)
	require.Contains(t, out.String(), "NAME")
}

func TestApp_DashboardDispatchesByRole(t *testing.T) {
	ctx := context.Background()

	f := &fakeService{stats: &models.DashboardStats{TotalUsers: 3, TotalStores: 2, TotalRatings: 9}}
	app, out := newTestApp(t, f, "")
	require.NoError(t, app.session.Login(ctx, models.User{ID: 1, Role: models.RoleAdmin}, "tok"))
	require.NoError(t, app.Dashboard(ctx))
	require.Contains(t, out.String(), "Total ratings: 9")

	f2 := &fakeService{ownerDash: &models.OwnerDashboard{
		Store:   models.Store{Name: "Coffee Corner", AvgRating: 4.5, TotalRatings: 2},
		Ratings: []models.Rating{{UserName: "Bob", Rating: 5}},
	}}
	app2, out2 := newTestApp(t, f2, "")
	require.NoError(t, app2.session.Login(ctx, models.User{ID: 2, Role: models.RoleStoreOwner}, "tok"))
	require.NoError(t, app2.Dashboard(ctx))
	require.Contains(t, out2.String(), "Coffee Corner")
	require.Contains(t, out2.String(), "Bob")
}

func TestApp_EditProfileMergesFields(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, &fakeService{}, "New Name\n\n")

	require.NoError(t, app.session.Login(ctx, models.User{ID: 1, Name: "Old", Email: "a@b.com", Role: models.RoleUser, Address: "Keep St"}, "tok"))
	require.NoError(t, app.EditProfile(ctx))

	user := app.session.Current()
	require.Equal(t, "New Name", user.Name)
	require.Equal(t, "Keep St", user.Address)
	require.Equal(t, "a@b.com", user.Email)
}

// errFake builds an error value matching the API client's one-message shape.
type errFake string

func (e errFake) Error() string { return string(e) }
