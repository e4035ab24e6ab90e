package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "storerating/internal/domain/errors"
)

// bcrypt ignores input beyond this many bytes, so longer passwords are rejected.
const bcryptMaxPasswordBytes = 72

const defaultSpecialChars = "!@#$%^&*"

// PasswordPolicy describes the rules a plaintext password must satisfy.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireSpecial   bool
	SpecialChars     string
	// RestrictCharset limits passwords to ASCII letters, digits and SpecialChars.
	RestrictCharset bool
}

// StrictPasswordPolicy is used in production: 8 to 16 characters with at least
// one uppercase letter and one of !@#$%^&*.
func StrictPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        16,
		RequireUppercase: true,
		RequireSpecial:   true,
		SpecialChars:     defaultSpecialChars,
		RestrictCharset:  true,
	}
}

// RelaxedPasswordPolicy only enforces a minimum length.
func RelaxedPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:    4,
		MaxLength:    bcryptMaxPasswordBytes,
		SpecialChars: defaultSpecialChars,
	}
}

// Validate returns domainerrors.ErrPasswordPolicy with details naming the first violated rule.
func (p PasswordPolicy) Validate(password string) error {
	length := utf8.RuneCountInString(password)

	if length < p.MinLength {
		return policyViolation(fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.MaxLength > 0 && length > p.MaxLength {
		return policyViolation(fmt.Sprintf("password must be at most %d characters long", p.MaxLength))
	}
	if len(password) > bcryptMaxPasswordBytes {
		return policyViolation(fmt.Sprintf("password must be at most %d bytes long", bcryptMaxPasswordBytes))
	}
	if p.RestrictCharset && !p.allowedCharset(password) {
		return policyViolation("password may only contain letters, digits and " + p.SpecialChars)
	}
	if p.RequireUppercase && !hasUppercase(password) {
		return policyViolation("password must contain at least one uppercase letter")
	}
	if p.RequireSpecial && !strings.ContainsAny(password, p.SpecialChars) {
		return policyViolation("password must contain at least one special character from " + p.SpecialChars)
	}

	return nil
}

func (p PasswordPolicy) allowedCharset(password string) bool {
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(p.SpecialChars, r):
		default:
			return false
		}
	}

	return true
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func policyViolation(details string) error {
	return domainerrors.ErrPasswordPolicy.WithDetails(details)
}
