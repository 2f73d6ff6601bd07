package domain

import "fmt"

// Role is one of the four fixed access levels of the console.
type Role string

const (
	RoleUser          Role = "user"
	RoleOperator      Role = "operator"
	RolePromptManager Role = "prompt_manager"
	RoleSuperAdmin    Role = "super_admin"
)

// roleLevels orders the roles: user < operator < prompt_manager < super_admin.
var roleLevels = map[Role]int{
	RoleUser:          1,
	RoleOperator:      2,
	RolePromptManager: 3,
	RoleSuperAdmin:    4,
}

// Roles returns every role from lowest to highest level.
func Roles() []Role {
	return []Role{RoleUser, RoleOperator, RolePromptManager, RoleSuperAdmin}
}

// Level returns the numeric level of r, or 0 when r is not a known role.
func (r Role) Level() int {
	return roleLevels[r]
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	return r.Level() > 0
}

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// HasPermission reports whether current satisfies the requirement expressed
// by required: its level must be at least the lowest level in the set.
// An empty set imposes no requirement. Unknown roles in the set are ignored,
// and a set made only of unknown roles can never be satisfied.
func HasPermission(current Role, required ...Role) bool {
	level := current.Level()
	if level == 0 {
		return false
	}
	if len(required) == 0 {
		return true
	}

	lowest := 0
	for _, r := range required {
		l := r.Level()
		if l == 0 {
			continue
		}
		if lowest == 0 || l < lowest {
			lowest = l
		}
	}
	if lowest == 0 {
		return false
	}
	return level >= lowest
}
