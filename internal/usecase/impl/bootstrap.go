package impl

import (
	"context"
	"log/slog"

	"storerating/config"
	"storerating/internal/domain/lifecycle"
	"storerating/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BootstrapParams defines the dependencies of the bootstrap admin hook.
type BootstrapParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Auth   usecase.AuthUsecase
	Logger *slog.Logger
}

// RegisterBootstrapAdmin seeds the configured administrator on startup. It must be
// invoked after the migration hook so the users table exists.
func RegisterBootstrapAdmin(params BootstrapParams) {
	admin := params.Config.BootstrapAdmin
	if admin == nil || admin.Email == "" {
		params.Logger.Info("No bootstrap admin configured")

		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			_, err := params.Auth.EnsureAdmin(ctx, &usecase.BootstrapAdminInput{
				Name:     admin.Name,
				Email:    admin.Email,
				Password: admin.Password,
				Address:  admin.Address,
			})

			return errors.WithStack(err)
		},
	})
}
