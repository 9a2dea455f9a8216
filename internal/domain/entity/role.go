// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleNormalUser indicates a regular user who browses and rates stores.
	RoleNormalUser Role = "normal_user"
	// RoleStoreOwner indicates a user who owns one or more stores.
	RoleStoreOwner Role = "store_owner"
	// RoleSystemAdmin indicates a platform administrator.
	RoleSystemAdmin Role = "system_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleNormalUser, RoleStoreOwner, RoleSystemAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw string to a Role. Unknown values fall back
// to RoleNormalUser, matching the self-registration default.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleNormalUser
	}

	return role
}
