// Package identity implements the authority.Backend boundary on Postgres
// and Redis: bcrypt credential checks, revocable JWT sessions, and the
// single-row role lookup.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/auth"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/authority"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/repository"
)

// Service is the concrete identity/data backend.
type Service struct {
	users  repository.AdminUserRepository
	roles  repository.AdminRoleRepository
	tokens *TokenManager
	store  *SessionStore
	logger *zap.Logger
}

// Dependencies bundles what the identity service needs.
type Dependencies struct {
	UserRepo repository.AdminUserRepository
	RoleRepo repository.AdminRoleRepository
	Tokens   *TokenManager
	Sessions *SessionStore
	Logger   *zap.Logger
}

// NewService builds the identity backend.
func NewService(deps Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:  deps.UserRepo,
		roles:  deps.RoleRepo,
		tokens: deps.Tokens,
		store:  deps.Sessions,
		logger: logger,
	}
}

var _ authority.Backend = (*Service)(nil)

// VerifyCredentials checks the password and mints a revocable session.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (*domain.AdminSession, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, authority.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load admin user: %w", err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, authority.ErrInvalidCredentials
	}

	token, jti, expiresAt, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	rec := SessionRecord{JTI: jti, UserID: user.ID, Email: user.Email, ExpiresAt: expiresAt}
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &domain.AdminSession{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}

// SessionFromToken restores the session a token refers to, failing with
// ErrSessionInvalid for malformed, expired, or revoked tokens.
func (s *Service) SessionFromToken(ctx context.Context, token string) (*domain.AdminSession, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, authority.ErrSessionInvalid
	}

	rec, err := s.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}
	if rec == nil {
		return nil, authority.ErrSessionInvalid
	}

	return &domain.AdminSession{
		Token:     token,
		UserID:    rec.UserID,
		Email:     rec.Email,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

// LookupRole fetches the authorization record for a user.
func (s *Service) LookupRole(ctx context.Context, userID string) (domain.Role, error) {
	role, err := s.roles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RoleUnresolved, authority.ErrNoRoleRecord
		}
		return domain.RoleUnresolved, fmt.Errorf("lookup role: %w", err)
	}
	return role, nil
}

// TouchLastLogin records the sign-in time; callers treat failures as
// best-effort.
func (s *Service) TouchLastLogin(ctx context.Context, userID string) error {
	return s.users.TouchLastLogin(ctx, userID)
}

// InvalidateSession revokes the session behind the token.
func (s *Service) InvalidateSession(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		// An unparseable token cannot refer to a live session.
		return nil
	}
	return s.store.Delete(ctx, claims.ID)
}
