package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdministrator.Valid())
	assert.True(t, RoleEditor.Valid())
	assert.True(t, RoleViewer.Valid())
	assert.False(t, RoleUnresolved.Valid())
	assert.False(t, Role("superuser").Valid())
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdministrator.AtLeast(RoleViewer))
	assert.True(t, RoleAdministrator.AtLeast(RoleAdministrator))
	assert.True(t, RoleEditor.AtLeast(RoleViewer))
	assert.False(t, RoleEditor.AtLeast(RoleAdministrator))
	assert.False(t, RoleViewer.AtLeast(RoleEditor))

	// An unresolved role never satisfies a requirement, including itself.
	assert.False(t, RoleUnresolved.AtLeast(RoleViewer))
	assert.False(t, RoleUnresolved.AtLeast(RoleUnresolved))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("editor")
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, role)

	_, err = ParseRole("owner")
	assert.Error(t, err)

	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestSessionSameAs(t *testing.T) {
	a := &AdminSession{Token: "tok-1", UserID: "user-1"}
	b := &AdminSession{Token: "tok-1", UserID: "user-1"}
	c := &AdminSession{Token: "tok-2", UserID: "user-1"}

	assert.True(t, a.SameAs(b))
	assert.False(t, a.SameAs(c))
	assert.False(t, a.SameAs(nil))

	var nilSession *AdminSession
	assert.True(t, nilSession.SameAs(nil))
}
