package impl

import (
	"testing"

	"storerating/config"
	mockUsecase "storerating/internal/mocks/usecase"
	"storerating/internal/usecase"

	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

func TestRegisterBootstrapAdmin(t *testing.T) {
	t.Run("seeds the configured admin on start", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		auth := mockUsecase.NewMockAuthUsecase(t)

		auth.EXPECT().
			EnsureAdmin(mock.Anything, &usecase.BootstrapAdminInput{
				Name:     "System Administrator",
				Email:    "admin@example.com",
				Password: "Admin@123",
				Address:  "Head Office",
			}).
			Return(true, nil)

		RegisterBootstrapAdmin(BootstrapParams{
			Lifecycle: lc,
			Config: &config.Config{BootstrapAdmin: &config.BootstrapAdminConfig{
				Name:     "System Administrator",
				Email:    "admin@example.com",
				Password: "Admin@123",
				Address:  "Head Office",
			}},
			Auth:   auth,
			Logger: newDiscardLogger(),
		})

		lc.RequireStart()
		lc.RequireStop()
	})

	t.Run("does nothing without configuration", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		auth := mockUsecase.NewMockAuthUsecase(t)

		RegisterBootstrapAdmin(BootstrapParams{
			Lifecycle: lc,
			Config:    &config.Config{},
			Auth:      auth,
			Logger:    newDiscardLogger(),
		})

		lc.RequireStart()
		lc.RequireStop()
	})
}
