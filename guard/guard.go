// Package guard decides, for every navigation, whether a view may render,
// must wait for auth to settle, or must redirect.
package guard

import "github.com/selcanmusayeva/restaurant-ordering-frontend/models"

const (
	PathRoot         = "/"
	PathLogin        = "/login"
	PathScan         = "/scan"
	PathCustomerMenu = "/customer/menu"
	PathStaffOrders  = "/staff/orders"
)

type Outcome int

const (
	Render Outcome = iota
	Loading
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Loading:
		return "loading"
	case Redirect:
		return "redirect"
	}
	return "render"
}

// Requirement is what a route demands.
type Requirement struct {
	RequireAuth         bool
	Roles               []models.UserRole
	RequireTableSession bool
	// AllowURLTable lets a table id in the URL stand in for a session.
	AllowURLTable bool
	// CustomerOnly sends signed-in staff back to their own home.
	CustomerOnly bool
}

// Snapshot is the part of device state the guard looks at.
type Snapshot struct {
	Loading         bool
	Authenticated   bool
	Role            models.UserRole
	HasTableSession bool
	URLTableID      uint
}

type Decision struct {
	Outcome  Outcome
	Location string
}

func (d Decision) Allowed() bool {
	return d.Outcome == Render
}

// Evaluate applies, in order: loading, authentication, role, table session.
// Anonymous diners pass a CustomerOnly route.
func Evaluate(req Requirement, snap Snapshot) Decision {
	needsAuth := req.RequireAuth || len(req.Roles) > 0
	if (needsAuth || req.CustomerOnly) && snap.Loading {
		return Decision{Outcome: Loading}
	}
	if needsAuth && !snap.Authenticated {
		return Decision{Outcome: Redirect, Location: PathLogin}
	}
	if len(req.Roles) > 0 && !hasRole(req.Roles, snap.Role) {
		return Decision{Outcome: Redirect, Location: HomeFor(snap.Role)}
	}
	if req.CustomerOnly && snap.Authenticated && snap.Role != models.RoleCustomer {
		return Decision{Outcome: Redirect, Location: HomeFor(snap.Role)}
	}
	if req.RequireTableSession && !snap.HasTableSession {
		if req.AllowURLTable && snap.URLTableID > 0 {
			return Decision{Outcome: Render}
		}
		return Decision{Outcome: Redirect, Location: PathScan}
	}
	return Decision{Outcome: Render}
}

// HomeFor is the landing view of a role.
func HomeFor(role models.UserRole) string {
	switch {
	case role == models.RoleCustomer:
		return PathCustomerMenu
	case role.IsStaff():
		return PathStaffOrders
	}
	return PathRoot
}

func hasRole(roles []models.UserRole, role models.UserRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
