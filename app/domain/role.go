package domain

import "fmt"

// Role represents the access level of a back-office identity.
type Role string

const (
	// RoleAdmin can manage every client and all back-office settings.
	RoleAdmin Role = "admin"
	// RoleEmployee works on behalf of clients it has been granted.
	RoleEmployee Role = "employee"
	// RoleClient is scoped to its own home client and has no grants.
	RoleClient Role = "client"
)

// AllRoles lists every known role. Role checks iterate this set so an
// unknown value stored in the database is rejected rather than passed
// through.
var AllRoles = []Role{RoleAdmin, RoleEmployee, RoleClient}

// ParseRole converts a stored string into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role: %q", s)
	}
	return role, nil
}

// Valid returns true if the role is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// CanHoldGrants returns true for roles that may act as a client other
// than their own via a validated grant. Client accounts never hold
// grants; their only resolvable client is their home client.
func (r Role) CanHoldGrants() bool {
	return r == RoleAdmin || r == RoleEmployee
}
