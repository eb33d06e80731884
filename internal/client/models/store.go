package models

// Store is a rateable store listing. AvgRating and UserRating are only
// populated by endpoints that compute them (end-user store browsing and the
// owner dashboard); zero means "no ratings yet".
type Store struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	AvgRating    float64 `json:"avg_rating,omitempty"`
	UserRating   int     `json:"userRating,omitempty"`
	TotalRatings int     `json:"totalRatings,omitempty"`
}
