package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/authority"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

type fakeIdentityBackend struct {
	verifyFn func(ctx context.Context, email, password string) (*domain.AdminSession, error)
	lookupFn func(ctx context.Context, userID string) (domain.Role, error)
	touchFn  func(ctx context.Context, userID string) error

	invalidated []string
}

func (f *fakeIdentityBackend) VerifyCredentials(ctx context.Context, email, password string) (*domain.AdminSession, error) {
	return f.verifyFn(ctx, email, password)
}

func (f *fakeIdentityBackend) SessionFromToken(context.Context, string) (*domain.AdminSession, error) {
	return nil, authority.ErrSessionInvalid
}

func (f *fakeIdentityBackend) LookupRole(ctx context.Context, userID string) (domain.Role, error) {
	return f.lookupFn(ctx, userID)
}

func (f *fakeIdentityBackend) TouchLastLogin(ctx context.Context, userID string) error {
	if f.touchFn != nil {
		return f.touchFn(ctx, userID)
	}
	return nil
}

func (f *fakeIdentityBackend) InvalidateSession(_ context.Context, token string) error {
	f.invalidated = append(f.invalidated, token)
	return nil
}

func adminSessionFixture() *domain.AdminSession {
	return &domain.AdminSession{
		Token:     "tok-1",
		UserID:    "user-1",
		Email:     "admin@admaxify.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSignInAdminSuccess(t *testing.T) {
	backend := &fakeIdentityBackend{
		verifyFn: func(context.Context, string, string) (*domain.AdminSession, error) {
			return adminSessionFixture(), nil
		},
		lookupFn: func(context.Context, string) (domain.Role, error) {
			return domain.RoleEditor, nil
		},
	}
	svc := NewAuthService(backend, zap.NewNop())

	session, role, err := svc.SignInAdmin(context.Background(), "admin@admaxify.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, domain.RoleEditor, role)
	assert.Empty(t, backend.invalidated)
}

func TestSignInAdminBadCredentials(t *testing.T) {
	backend := &fakeIdentityBackend{
		verifyFn: func(context.Context, string, string) (*domain.AdminSession, error) {
			return nil, authority.ErrInvalidCredentials
		},
	}
	svc := NewAuthService(backend, zap.NewNop())

	_, _, err := svc.SignInAdmin(context.Background(), "admin@admaxify.com", "wrong")

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestSignInAdminNoRoleRecordRollsBack(t *testing.T) {
	backend := &fakeIdentityBackend{
		verifyFn: func(context.Context, string, string) (*domain.AdminSession, error) {
			return adminSessionFixture(), nil
		},
		lookupFn: func(context.Context, string) (domain.Role, error) {
			return domain.RoleUnresolved, authority.ErrNoRoleRecord
		},
	}
	svc := NewAuthService(backend, zap.NewNop())

	_, _, err := svc.SignInAdmin(context.Background(), "admin@admaxify.com", "secret")

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	assert.Equal(t, authority.NoAdminAccessMessage, domainErr.Message)
	assert.Equal(t, []string{"tok-1"}, backend.invalidated)
}

func TestSignInAdminTouchFailureTolerated(t *testing.T) {
	backend := &fakeIdentityBackend{
		verifyFn: func(context.Context, string, string) (*domain.AdminSession, error) {
			return adminSessionFixture(), nil
		},
		lookupFn: func(context.Context, string) (domain.Role, error) {
			return domain.RoleAdministrator, nil
		},
		touchFn: func(context.Context, string) error {
			return errors.New("db timeout")
		},
	}
	svc := NewAuthService(backend, zap.NewNop())

	_, role, err := svc.SignInAdmin(context.Background(), "admin@admaxify.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdministrator, role)
}

func TestSignOutAdmin(t *testing.T) {
	backend := &fakeIdentityBackend{}
	svc := NewAuthService(backend, zap.NewNop())

	require.NoError(t, svc.SignOutAdmin(context.Background(), "tok-1"))
	assert.Equal(t, []string{"tok-1"}, backend.invalidated)
}
