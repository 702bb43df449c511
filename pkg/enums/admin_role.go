package enums

import "fmt"

// AdminRole represents a back-office permissions level.
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "ADMIN"
	AdminRoleSuperAdmin AdminRole = "SUPER_ADMIN"
)

var validAdminRoles = []AdminRole{
	AdminRoleAdmin,
	AdminRoleSuperAdmin,
}

// String implements fmt.Stringer.
func (r AdminRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known AdminRole.
func (r AdminRole) IsValid() bool {
	for _, candidate := range validAdminRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseAdminRole converts raw input into an AdminRole.
func ParseAdminRole(value string) (AdminRole, error) {
	for _, candidate := range validAdminRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid admin role %q", value)
}
