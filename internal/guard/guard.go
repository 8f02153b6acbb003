// Package guard centralizes every role-conditioned navigation decision.
// Guards are pure functions over (identity, loading); views never re-derive
// role checks themselves.
package guard

import "github.com/rajputritesh1907/attendanceFrontend/internal/model"

// Route names a top-level view of the application.
type Route int

const (
	RouteLogin Route = iota
	RouteDashboard
	RouteAdmin
)

// Decision is the outcome of consulting a guard for a requested view.
type Decision int

const (
	// ShowPlaceholder renders a loading placeholder while the initial session
	// restore is still pending.
	ShowPlaceholder Decision = iota
	// Proceed renders the requested view.
	Proceed
	// RedirectLogin sends the visitor to the login view.
	RedirectLogin
	// RedirectDashboard sends the visitor to the default authenticated view.
	// Used instead of RedirectLogin by the admin guard so the admin route's
	// existence is not revealed to anonymous visitors.
	RedirectDashboard
)

// Authenticated gates views that require any signed-in identity.
func Authenticated(identity *model.Identity, loading bool) Decision {
	if loading {
		return ShowPlaceholder
	}
	if identity == nil {
		return RedirectLogin
	}
	return Proceed
}

// AdminOnly gates the admin console.
func AdminOnly(identity *model.Identity, loading bool) Decision {
	if loading {
		return ShowPlaceholder
	}
	if identity == nil || !identity.Role.IsAdmin() {
		return RedirectDashboard
	}
	return Proceed
}

// PostLogin picks the landing view for a fresh login.
func PostLogin(role model.Role) Route {
	if role.IsAdmin() {
		return RouteAdmin
	}
	return RouteDashboard
}

// Home resolves the role-appropriate view for an already-restored session.
func Home(identity *model.Identity) Route {
	if identity == nil {
		return RouteLogin
	}
	return PostLogin(identity.Role)
}
