// Package api implements the HTTP gateway to the store-rating backend.
//
// All traffic goes through a single Client that injects the bearer
// credential, strips the transport envelope off successful responses and
// reduces every failure to one human-readable error message. A 401 response
// additionally fires the registered unauthorized handler so the session
// layer can tear itself down, while the original caller still receives the
// error.
package api

import (
	"context"
	"net/http"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/models"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the self-service sign-up request body.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// CreateUserRequest is the admin user-creation body.
type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Address  string      `json:"address"`
	Role     models.Role `json:"role"`
}

// CreateStoreRequest is the admin store-creation body. OwnerEmail is
// optional and links the store to an existing store-owner account.
type CreateStoreRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

// RatingSubmission is the body of a star-rating submission.
type RatingSubmission struct {
	StoreID int64 `json:"storeId"`
	Rating  int   `json:"rating"`
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

type storesResponse struct {
	Stores []models.Store `json:"stores"`
}

// Service is the backend surface the UI layer programs against. *Client is
// the production implementation; tests substitute fakes.
type Service interface {
	SetAuthToken(token string)
	Login(ctx context.Context, creds Credentials) (*AuthResponse, error)
	Register(ctx context.Context, reg Registration) (*AuthResponse, error)
	UpdatePassword(ctx context.Context, password string) error
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	CreateStore(ctx context.Context, req CreateStoreRequest) (*models.Store, error)
	Users(ctx context.Context, q ListQuery) ([]models.User, error)
	Stores(ctx context.Context, q ListQuery) ([]models.Store, error)
	UserStores(ctx context.Context, q ListQuery) ([]models.Store, error)
	SubmitRating(ctx context.Context, storeID int64, rating int) error
	OwnerDashboard(ctx context.Context) (*models.OwnerDashboard, error)
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdatePassword(ctx context.Context, password string) error {
	body := struct {
		Password string `json:"password"`
	}{Password: password}
	return c.do(ctx, http.MethodPut, "/auth/password", nil, body, nil)
}

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/admin/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateStore(ctx context.Context, req CreateStoreRequest) (*models.Store, error) {
	var store models.Store
	if err := c.do(ctx, http.MethodPost, "/admin/stores", nil, req, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (c *Client) Users(ctx context.Context, q ListQuery) ([]models.User, error) {
	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users", q.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) Stores(ctx context.Context, q ListQuery) ([]models.Store, error) {
	var resp storesResponse
	if err := c.do(ctx, http.MethodGet, "/admin/stores", q.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stores, nil
}

func (c *Client) UserStores(ctx context.Context, q ListQuery) ([]models.Store, error) {
	var resp storesResponse
	if err := c.do(ctx, http.MethodGet, "/user/stores", q.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stores, nil
}

func (c *Client) SubmitRating(ctx context.Context, storeID int64, rating int) error {
	return c.do(ctx, http.MethodPost, "/user/ratings", nil, RatingSubmission{StoreID: storeID, Rating: rating}, nil)
}

func (c *Client) OwnerDashboard(ctx context.Context) (*models.OwnerDashboard, error) {
	var dash models.OwnerDashboard
	if err := c.do(ctx, http.MethodGet, "/store-owner/dashboard", nil, nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}
