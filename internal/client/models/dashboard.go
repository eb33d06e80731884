package models

// DashboardStats are the platform-wide counters shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers   int `json:"totalUsers"`
	TotalStores  int `json:"totalStores"`
	TotalRatings int `json:"totalRatings"`
}

// OwnerDashboard is the store-owner view: the owner's store plus the ratings
// it has received.
type OwnerDashboard struct {
	Store   Store    `json:"store"`
	Ratings []Rating `json:"ratings"`
}
