// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is the access level carried in access tokens.
type Role string

const (
	// RoleUser is a hostel resident.
	RoleUser Role = "user"
	// RoleAdmin manages meals, packages and meal requests.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is the role set of a caller.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to the token claim representation.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings parses a token claim. Unknown roles are dropped and duplicates collapsed.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.ToLower(strings.TrimSpace(s)))
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
