package migrations

import (
	"context"
	"log/slog"

	"storerating/config"
	"storerating/internal/errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies of the startup migration hook.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// RegisterAutoMigrate applies pending migrations on startup when migration.autoMigrate is set.
// It must be invoked after the database hook so the connection is verified first.
func RegisterAutoMigrate(params Params) error {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return nil
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	migrator := NewMigrator(sqlDB, params.Logger)
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrator.Up(ctx)
		},
	})

	return nil
}
