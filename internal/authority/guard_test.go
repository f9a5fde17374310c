package authority

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

func TestDecidePendingWhileLoading(t *testing.T) {
	snap := Snapshot{Loading: true}
	assert.Equal(t, DecisionPending, Decide(snap, domain.RoleViewer))
	assert.Equal(t, DecisionPending, Decide(snap, domain.RoleAdministrator))

	// Loading dominates even when a stale session is still present.
	snap.Session = sessionFixture("tok-1")
	assert.Equal(t, DecisionPending, Decide(snap, domain.RoleViewer))
}

func TestDecideRedirectWithoutSession(t *testing.T) {
	snap := Snapshot{}
	assert.Equal(t, DecisionRedirect, Decide(snap, domain.RoleUnresolved))
	assert.Equal(t, DecisionRedirect, Decide(snap, domain.RoleViewer))
	assert.Equal(t, DecisionRedirect, Decide(snap, domain.RoleAdministrator))
}

func TestDecideAnySessionSuffices(t *testing.T) {
	snap := Snapshot{Session: sessionFixture("tok-1")}
	assert.Equal(t, DecisionAllowed, Decide(snap, domain.RoleUnresolved))
}

func TestDecideRoleMatrix(t *testing.T) {
	cases := []struct {
		name     string
		role     domain.Role
		required domain.Role
		want     Decision
	}{
		{"viewer gate passes unresolved role", domain.RoleUnresolved, domain.RoleViewer, DecisionAllowed},
		{"viewer gate passes viewer", domain.RoleViewer, domain.RoleViewer, DecisionAllowed},
		{"viewer gate passes administrator", domain.RoleAdministrator, domain.RoleViewer, DecisionAllowed},
		{"editor gate denies unresolved role", domain.RoleUnresolved, domain.RoleEditor, DecisionDenied},
		{"editor gate denies viewer", domain.RoleViewer, domain.RoleEditor, DecisionDenied},
		{"editor gate passes editor", domain.RoleEditor, domain.RoleEditor, DecisionAllowed},
		{"editor gate passes administrator", domain.RoleAdministrator, domain.RoleEditor, DecisionAllowed},
		{"admin gate denies editor", domain.RoleEditor, domain.RoleAdministrator, DecisionDenied},
		{"admin gate passes administrator", domain.RoleAdministrator, domain.RoleAdministrator, DecisionAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := Snapshot{Session: sessionFixture("tok-1"), Role: tc.role}
			assert.Equal(t, tc.want, Decide(snap, tc.required))
		})
	}
}

func TestGuardTracksAuthorityState(t *testing.T) {
	backend := &fakeBackend{
		verifyFn: func(_ context.Context, email, password string) (*domain.AdminSession, error) {
			return sessionFixture("tok-1"), nil
		},
		lookupFn: func(_ context.Context, userID string) (domain.Role, error) {
			return domain.RoleEditor, nil
		},
	}
	a := New(backend)
	guard := NewGuard(a)

	assert.Equal(t, DecisionPending, guard.Decide(domain.RoleViewer))

	a.Start(context.Background())
	assert.Equal(t, DecisionRedirect, guard.Decide(domain.RoleViewer))

	require.True(t, a.SignIn(context.Background(), "admin@admaxify.com", "secret").Success)
	assert.Equal(t, DecisionAllowed, guard.Decide(domain.RoleEditor))
	assert.Equal(t, DecisionDenied, guard.Decide(domain.RoleAdministrator))

	a.SignOut(context.Background())
	assert.Equal(t, DecisionRedirect, guard.Decide(domain.RoleEditor))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "pending", DecisionPending.String())
	assert.Equal(t, "redirect", DecisionRedirect.String())
	assert.Equal(t, "denied", DecisionDenied.String())
	assert.Equal(t, "allowed", DecisionAllowed.String())
}
