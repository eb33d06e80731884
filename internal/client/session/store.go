// Package session owns the authenticated-identity lifecycle of the client:
// who is logged in, the bearer token backing it, and the persisted copy of
// both that survives restarts. It is the only writer of the persisted
// `token` and `user` entries and the only caller of the API client's
// SetAuthToken.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/repositories/state"
	"github.com/ChetanGaurkhede/client-store-rating/internal/dbx"
	"github.com/ChetanGaurkhede/client-store-rating/internal/logging"
)

// Persisted entry keys.
const (
	keyToken = "token"
	keyUser  = "user"
)

// TokenSetter is the slice of the API client the session layer mutates.
type TokenSetter interface {
	SetAuthToken(token string)
}

// Store is the single authoritative source of the current session.
//
// Invariant: user and token are set together and cleared together; a
// non-nil user always has a non-empty token. The only transient exception
// is the loading window before Restore has finished.
type Store struct {
	db  *sql.DB
	api TokenSetter
	log logging.Logger

	mu      sync.RWMutex
	user    *models.User
	token   string
	loading bool

	onReset func()
}

// NewStore builds a session store over the local database. The store starts
// in the loading state until Restore is called.
func NewStore(db *sql.DB, api TokenSetter, log logging.Logger) *Store {
	return &Store{db: db, api: api, log: log, loading: true}
}

// SetResetHandler registers the callback fired when the session is torn
// down by an authorization failure. The UI shell subscribes to it to
// navigate back to the login screen.
func (s *Store) SetResetHandler(fn func()) {
	s.onReset = fn
}

func (s *Store) stateRepo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

// Restore adopts a previously persisted session, if any. It trusts the
// persisted values without a network round trip: the first real request
// discovers whether the token is still valid. Corrupted or partial
// persisted state is discarded locally and never surfaced. Always ends the
// loading window.
func (s *Store) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	repo := s.stateRepo()

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	userData, err := repo.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if len(token) == 0 || len(userData) == 0 {
		return repo.Clear(ctx)
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Warn(ctx, "discarding corrupted persisted session", "error", err)
		return repo.Clear(ctx)
	}

	s.adopt(&user, string(token))
	return nil
}

// Login persists the identity and makes it the active session, replacing
// any prior one.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userData)
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.adopt(&user, token)
	return nil
}

// Logout clears the persisted entries and the active session. Safe to call
// when already anonymous.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.stateRepo().Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.clear()
	return nil
}

// UpdateProfile merges the specified fields into the current user record
// and re-persists it. When no session is active it is a silent no-op: the
// UI gates profile edits behind login, so this is a caller error that must
// not blow up.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil
	}
	update.Apply(s.user)
	merged := *s.user
	s.mu.Unlock()

	userData, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	if err := s.stateRepo().Set(ctx, keyUser, userData); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

// HandleUnauthorized is wired into the API client as its unauthorized
// handler. It tears the session down (persisted entries, in-memory state,
// ambient credential) and notifies the UI shell. Multiple in-flight 401s
// may each land here; clearing an already-empty session is a no-op.
func (s *Store) HandleUnauthorized() {
	ctx := context.Background()
	if err := s.stateRepo().Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
	s.clear()
	if s.onReset != nil {
		s.onReset()
	}
}

func (s *Store) adopt(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()
	s.api.SetAuthToken(token)
}

func (s *Store) clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.api.SetAuthToken("")
}

// Current returns a copy of the logged-in user, or nil when anonymous.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the active bearer token, "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading reports whether the initial restoration is still pending.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
