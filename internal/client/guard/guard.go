// Package guard decides whether a protected view may render for the current
// session. The decision is pure: it looks only at the session snapshot, so
// it can run on every render without side effects.
package guard

import (
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/session"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

// Outcome is the guard's verdict for one view.
type Outcome int

const (
	// Loading means the session is still restoring; render a spinner.
	Loading Outcome = iota
	// Unauthenticated means no valid session; redirect to login.
	Unauthenticated
	// WrongRole means the session's role does not match the view; redirect
	// to the role's own dashboard.
	WrongRole
	// Authorized means the wrapped view may render.
	Authorized
)

func (o Outcome) String() string {
	switch o {
	case Loading:
		return "loading"
	case Unauthenticated:
		return "unauthenticated"
	case WrongRole:
		return "wrong role"
	case Authorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Decision carries the verdict plus the route to redirect to when the view
// must not render. RedirectTo is empty for Loading and Authorized.
type Decision struct {
	Outcome    Outcome
	RedirectTo string
}

// LoginRoute is where unauthenticated sessions are sent.
const LoginRoute = "/login"

// HomeRoute maps a role onto its dashboard route. The switch is exhaustive
// over the closed role set; an unknown role lands on the public root.
func HomeRoute(role common.Role) string {
	switch role {
	case common.RoleAdmin:
		return "/admin"
	case common.RoleTeacher:
		return "/teacher"
	case common.RoleStudent:
		return "/student"
	case common.RoleDeveloper:
		return "/developer"
	default:
		return "/"
	}
}

// Decide evaluates the guard for a view requiring the given role.
func Decide(state session.State, required common.Role) Decision {
	if state.Loading {
		return Decision{Outcome: Loading}
	}
	if !state.Authenticated || state.User == nil {
		return Decision{Outcome: Unauthenticated, RedirectTo: LoginRoute}
	}
	if state.User.Role != required {
		return Decision{Outcome: WrongRole, RedirectTo: HomeRoute(state.User.Role)}
	}
	return Decision{Outcome: Authorized}
}
