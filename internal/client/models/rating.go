package models

// Rating is a single star rating left for a store, as seen on the owner
// dashboard.
type Rating struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at,omitempty"`
}
