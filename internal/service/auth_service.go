package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/authority"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// AuthService coordinates the admin sign-in flow for the HTTP API. It
// applies the same sequence the panel-side authority runs: verify
// credentials, resolve the role, reverse the sign-in when no
// authorization record exists, then best-effort touch last login.
type AuthService struct {
	backend authority.Backend
	logger  *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(backend authority.Backend, logger *zap.Logger) *AuthService {
	return &AuthService{backend: backend, logger: logger}
}

// SignInAdmin authenticates an admin and returns the session with its role.
func (s *AuthService) SignInAdmin(ctx context.Context, email, password string) (*domain.AdminSession, domain.Role, error) {
	session, err := s.backend.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, authority.ErrInvalidCredentials) {
			return nil, domain.RoleUnresolved, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, domain.RoleUnresolved, apperrors.MapError(err)
	}

	role, err := s.backend.LookupRole(ctx, session.UserID)
	if err != nil {
		if invErr := s.backend.InvalidateSession(ctx, session.Token); invErr != nil {
			s.logger.Warn("rollback sign-out failed", zap.Error(invErr))
		}
		if errors.Is(err, authority.ErrNoRoleRecord) {
			return nil, domain.RoleUnresolved, apperrors.NewForbidden(authority.NoAdminAccessMessage)
		}
		return nil, domain.RoleUnresolved, apperrors.MapError(err)
	}

	if err := s.backend.TouchLastLogin(ctx, session.UserID); err != nil {
		s.logger.Warn("last-login update failed", zap.String("user_id", session.UserID), zap.Error(err))
	}

	return session, role, nil
}

// SignOutAdmin revokes the session server-side. Callers report success to
// the client regardless; the local sign-out already happened there.
func (s *AuthService) SignOutAdmin(ctx context.Context, token string) error {
	return s.backend.InvalidateSession(ctx, token)
}
