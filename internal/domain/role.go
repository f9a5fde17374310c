package domain

import "fmt"

// Role enumerates admin panel privilege tiers.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEditor        Role = "editor"
	RoleViewer        Role = "viewer"

	// RoleUnresolved marks a session whose role lookup has not completed
	// (or returned nothing). It carries no privilege of its own.
	RoleUnresolved Role = ""
)

var roleRank = map[Role]int{
	RoleViewer:        1,
	RoleEditor:        2,
	RoleAdministrator: 3,
}

// Valid reports whether the role is a known privilege tier.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether the role carries at least the privilege of min.
// An unresolved role satisfies nothing.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if !role.Valid() {
		return RoleUnresolved, fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}
