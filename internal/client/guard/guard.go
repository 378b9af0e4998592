// Package guard decides whether the current session may open a route.
package guard

import (
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/session"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

type Outcome int

const (
	// Loading: the session is still being verified; decide later.
	Loading Outcome = iota
	RedirectLogin
	RedirectHome
	Allow
)

func (o Outcome) String() string {
	switch o {
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// Route is a protected screen. An empty Allowed set admits any valid role.
type Route struct {
	Name    string
	Allowed roles.Set
}

// Decision carries the outcome and, for redirects, the route to go to.
type Decision struct {
	Outcome Outcome
	Target  string
}

const LoginRoute = "login"

// Decide is pure: it only looks at its arguments.
func Decide(s session.Snapshot, r Route) Decision {
	switch {
	case s.IsLoading:
		return Decision{Outcome: Loading}
	case !s.IsAuthenticated():
		return Decision{Outcome: RedirectLogin, Target: LoginRoute}
	case !r.Allowed.Contains(s.User.Role):
		return Decision{Outcome: RedirectHome, Target: Home(s.User.Role)}
	default:
		return Decision{Outcome: Allow, Target: r.Name}
	}
}

// Home is the landing route of each role.
func Home(r roles.Role) string {
	switch r {
	case roles.SuperAdmin:
		return "admin-users"
	case roles.AdminClient:
		return "dashboard"
	case roles.Employer:
		return "traceability"
	default:
		return LoginRoute
	}
}
