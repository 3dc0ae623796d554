// Package gate decides, per navigation, whether a protected route may
// proceed. Decisions are a pure function of the requested path, the caller's
// role and whether a session exists; every navigation is evaluated
// independently.
package gate

import (
	"strings"

	"medicare-gateway/internal/domain"
)

// Route prefixes guarded by the gate.
const (
	LoginPath           = "/login"
	AdminDashboardPath  = "/admin-dashboard"
	SellerDashboardPath = "/seller-dashboard"
	HomePath            = "/"
)

// Decision is the outcome of evaluating one navigation. Zero value is
// "allow"; a redirect carries the target location.
type Decision struct {
	Location string
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d.Location == ""
}

// Allow lets the navigation proceed.
func Allow() Decision {
	return Decision{}
}

// RedirectTo sends the caller to location instead.
func RedirectTo(location string) Decision {
	return Decision{Location: location}
}

// Decide evaluates the ordered rule list, first match wins:
//
//  1. no session and not on /login            -> redirect /login
//  2. session present and on /login           -> redirect role home
//  3. admin under /admin-dashboard            -> allow
//  4. admin under /seller-dashboard           -> redirect /admin-dashboard
//  5. seller under /seller-dashboard          -> allow
//  6. seller under /admin-dashboard           -> redirect /seller-dashboard
//  7. customer under either dashboard         -> redirect /
//  8. otherwise                               -> allow
//
// The table is small enough to keep literal; there is deliberately no policy
// engine behind it.
func Decide(path string, role domain.Role, authenticated bool) Decision {
	if !authenticated && path != LoginPath {
		return RedirectTo(LoginPath)
	}
	if authenticated && path == LoginPath {
		return RedirectTo(RoleHome(role))
	}

	switch role {
	case domain.RoleAdmin:
		if underPath(path, AdminDashboardPath) {
			return Allow()
		}
		if underPath(path, SellerDashboardPath) {
			return RedirectTo(AdminDashboardPath)
		}
	case domain.RoleSeller:
		if underPath(path, SellerDashboardPath) {
			return Allow()
		}
		if underPath(path, AdminDashboardPath) {
			return RedirectTo(SellerDashboardPath)
		}
	default:
		if underPath(path, AdminDashboardPath) || underPath(path, SellerDashboardPath) {
			return RedirectTo(HomePath)
		}
	}

	return Allow()
}

// RoleHome is the landing page for an authenticated role.
func RoleHome(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return AdminDashboardPath
	case domain.RoleSeller:
		return SellerDashboardPath
	default:
		return HomePath
	}
}

// Protected reports whether the gate needs to evaluate path at all. Mirrors
// the route matcher of the original deployment: /login plus both dashboards
// and everything beneath them.
func Protected(path string) bool {
	return path == LoginPath ||
		underPath(path, AdminDashboardPath) ||
		underPath(path, SellerDashboardPath)
}

// underPath matches prefix itself and any nested path segment beneath it.
func underPath(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
