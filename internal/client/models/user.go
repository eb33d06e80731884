// Package models defines the domain records exchanged with the store-rating
// backend. Shapes mirror the REST API payloads and are passed through the
// client layers unmodified.
package models

// Role determines which part of the platform a user can access.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleStoreOwner Role = "store_owner"
)

// User is the authenticated identity record returned by the backend.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Address string `json:"address,omitempty"`
}

// ProfileUpdate carries a partial user update: only non-nil fields are
// applied, everything else keeps its current value.
type ProfileUpdate struct {
	Name    *string
	Email   *string
	Address *string
}

// Apply merges the update into u field by field.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
}
