// Package access declares who may call each API route and carries the resolved caller.
package access

import (
	"strings"

	"storerating/internal/domain/entity"
)

type level int

const (
	levelAuthenticated level = iota
	levelPublic
	levelOptional
	levelRoles
)

// Policy is the access rule attached to a route.
type Policy struct {
	level level
	roles entity.Roles
}

var (
	// Public routes ignore any token.
	Public = Policy{level: levelPublic}

	// Optional routes resolve a token when one is sent. A bad token still fails.
	Optional = Policy{level: levelOptional}

	// Authenticated routes require a valid token for any role.
	Authenticated = Policy{level: levelAuthenticated}
)

// Roles requires a valid token whose user holds one of roles.
func Roles(roles ...entity.Role) Policy {
	return Policy{level: levelRoles, roles: roles}
}

// IsPublic reports whether the gate skips token handling entirely.
func (p Policy) IsPublic() bool {
	return p.level == levelPublic
}

// AllowsAnonymous reports whether a request without a token may proceed.
func (p Policy) AllowsAnonymous() bool {
	return p.level == levelPublic || p.level == levelOptional
}

// Permits reports whether an identified user with role satisfies the policy.
func (p Policy) Permits(role entity.Role) bool {
	if p.level != levelRoles {
		return true
	}

	return p.roles.Contains(role)
}

func (p Policy) String() string {
	switch p.level {
	case levelPublic:
		return "public"
	case levelOptional:
		return "optional"
	case levelRoles:
		return "roles(" + strings.Join(p.roles.ToStrings(), ",") + ")"
	default:
		return "authenticated"
	}
}
