// Package service declares the ports the usecases need from infrastructure:
// hashing, tokens, QR rendering and event publishing.
package service

// PasswordHasher hashes and verifies account passwords and enforces the password policy.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns a validation error describing the first rule password breaks.
	ValidatePasswordStrength(password string) error
}
