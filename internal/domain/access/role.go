package access

import "strings"

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAssistant Role = "asistente"
)

var knownRoles = RoleSet{RoleAdmin: {}, RoleAssistant: {}}

// ParseRole accepts only the known roles, case-insensitively.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	_, ok := knownRoles[r]
	return r, ok
}

// ===============================
// Gate
// ===============================

type RoleSet map[Role]struct{}

func Roles(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

var (
	AdminOnly = Roles(RoleAdmin)
	Staff     = Roles(RoleAdmin, RoleAssistant)
)

// Admit is plain set membership. There is no role hierarchy.
func Admit(role Role, allowed RoleSet) bool {
	_, ok := allowed[role]
	return ok
}
