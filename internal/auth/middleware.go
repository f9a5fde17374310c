package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/authority"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated admin caller. Role stays
// unresolved when the lookup transiently fails; viewer-level routes still
// pass in that case.
type Principal struct {
	Session *domain.AdminSession
	Role    domain.Role
}

// SessionResolver is the slice of the identity backend the middleware
// needs. Satisfied by identity.Service.
type SessionResolver interface {
	SessionFromToken(ctx context.Context, token string) (*domain.AdminSession, error)
	LookupRole(ctx context.Context, userID string) (domain.Role, error)
}

// Middleware validates bearer session tokens and loads principals.
type Middleware struct {
	resolver SessionResolver
	logger   *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(resolver SessionResolver, logger *zap.Logger) *Middleware {
	return &Middleware{resolver: resolver, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	session, err := m.resolver.SessionFromToken(c.Context(), parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid session")
	}

	role, err := m.resolver.LookupRole(c.Context(), session.UserID)
	if err != nil {
		// Transient lookup failures degrade to an unresolved role rather
		// than failing the request; the next request retries.
		m.logger.Warn("role lookup failed", zap.String("user_id", session.UserID), zap.Error(err))
		role = domain.RoleUnresolved
	}

	c.Locals(principalKey, &Principal{Session: session, Role: role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RequireRole gates a route on a minimum role using the same decision
// logic the admin panel's route guard applies.
func RequireRole(min domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := authority.Snapshot{}
		if principal, ok := PrincipalFromContext(c); ok {
			snap.Session = principal.Session
			snap.Role = principal.Role
		}

		switch authority.Decide(snap, min) {
		case authority.DecisionAllowed:
			return c.Next()
		case authority.DecisionRedirect:
			return apperrors.NewUnauthorized("authentication required")
		default:
			return apperrors.NewForbidden("insufficient role")
		}
	}
}
