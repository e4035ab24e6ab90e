// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in. The password is only ever held as a hash.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries one of the given roles.
func (u *User) HasRole(roles ...Role) bool {
	return Roles(roles).Contains(u.Role)
}

// UserFilter narrows a user listing. Text fields match case-insensitive substrings
// and all non-empty fields must match.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
	Sort    Sort
}
