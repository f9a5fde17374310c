package authority

import "github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"

// LoginPath is where unauthenticated navigation is redirected.
const LoginPath = "/admin/login"

// Decision is the outcome of a route guard evaluation. Redirect is a
// navigation-level outcome (send to LoginPath); Denied is content-level,
// the surrounding chrome stays rendered.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionRedirect
	DecisionDenied
	DecisionAllowed
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirect:
		return "redirect"
	case DecisionDenied:
		return "denied"
	case DecisionAllowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// Decide evaluates a route requirement against an authority snapshot.
// required RoleUnresolved means any authenticated session suffices.
//
// A viewer requirement passes for any session even while the role is
// unresolved: role resolution is decoupled from session resolution and
// viewer is the floor privilege for an authenticated admin identity.
func Decide(s Snapshot, required domain.Role) Decision {
	if s.Loading {
		return DecisionPending
	}
	if s.Session == nil {
		return DecisionRedirect
	}
	if required == domain.RoleUnresolved {
		return DecisionAllowed
	}

	switch required {
	case domain.RoleViewer:
		return DecisionAllowed
	case domain.RoleEditor:
		if s.Role.AtLeast(domain.RoleEditor) {
			return DecisionAllowed
		}
	case domain.RoleAdministrator:
		if s.Role == domain.RoleAdministrator {
			return DecisionAllowed
		}
	}
	return DecisionDenied
}

// Guard binds route decisions to a live authority. It holds no state and
// re-reads the authority on every call.
type Guard struct {
	authority *Authority
}

// NewGuard builds a guard over the authority.
func NewGuard(a *Authority) *Guard {
	return &Guard{authority: a}
}

// Decide evaluates the requirement against the authority's current state.
func (g *Guard) Decide(required domain.Role) Decision {
	return Decide(g.authority.State(), required)
}
