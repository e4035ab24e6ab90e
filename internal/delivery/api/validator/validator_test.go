package validator

import (
	"strings"
	"testing"

	domainerrors "storerating/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name    string `json:"name" validate:"required,min=2,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	Role    string `json:"role" validate:"omitempty,oneof=admin user store_owner"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	v := New()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(&signup{Name: "Alice Anderson", Email: "alice@example.com", Address: "1 Main St"})

		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(&signup{Name: "A", Email: "not-an-email", Role: "root"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), "name must be at least 2 characters")
		assert.Contains(t, appErr.Details(), "email must be a valid email address")
		assert.Contains(t, appErr.Details(), "address is required")
		assert.Contains(t, appErr.Details(), "role must be one of: admin, user, store_owner")
	})
}

type trimmedSignup struct {
	Name    string `json:"name" validate:"required,min=2,max=60"`
	Address string `json:"address" validate:"required,max=400"`
}

func (s *trimmedSignup) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Address = strings.TrimSpace(s.Address)
}

func TestCustomValidator_NormalizesBeforeValidating(t *testing.T) {
	t.Parallel()

	req := &trimmedSignup{Name: "a ", Address: "   "}

	err := New().Validate(req)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "name must be at least 2 characters")
	assert.Contains(t, appErr.Details(), "address is required")
	assert.Equal(t, "a", req.Name)
	assert.Empty(t, req.Address)
}
