package session

import "github.com/ChetanGaurkhede/client-store-rating/internal/client/models"

// Default routes per role. The shell lands every identity on its role's
// dashboard; anything unrecognized goes back to login.
const (
	RouteLogin      = "/login"
	RouteAdmin      = "/admin"
	RouteUser       = "/user"
	RouteStoreOwner = "/store-owner"
)

// DashboardRoute maps an identity to its default route. A nil user or an
// unknown role resolves to the login route.
func DashboardRoute(user *models.User) string {
	if user == nil {
		return RouteLogin
	}
	switch user.Role {
	case models.RoleAdmin:
		return RouteAdmin
	case models.RoleUser:
		return RouteUser
	case models.RoleStoreOwner:
		return RouteStoreOwner
	default:
		return RouteLogin
	}
}
