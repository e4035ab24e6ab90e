// Package migrations owns the versioned database schema and applies it with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"storerating/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const migrationsTable = "schema_migrations"

//go:embed sql/*.sql
var embedded embed.FS

// NewSource opens the embedded migrations as a golang-migrate source.
func NewSource() (source.Driver, error) {
	src, err := iofs.New(embedded, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	return src, nil
}

// Migrator applies schema migrations over a dedicated connection of a shared pool.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, "up", func(mg *migrate.Migrate) error { return mg.Up() })
}

// Down reverts all migrations.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, "down", func(mg *migrate.Migrate) error { return mg.Down() })
}

// Steps applies n migrations forward, or -n backward when negative.
func (m *Migrator) Steps(ctx context.Context, n int) error {
	return m.run(ctx, "steps", func(mg *migrate.Migrate) error { return mg.Steps(n) })
}

// Version reports the current schema version.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, err error) {
	err = m.run(ctx, "version", func(mg *migrate.Migrate) error {
		var vErr error
		version, dirty, vErr = mg.Version()
		if errors.Is(vErr, migrate.ErrNilVersion) {
			return nil
		}

		return vErr
	})

	return version, dirty, err
}

func (m *Migrator) run(ctx context.Context, op string, fn func(*migrate.Migrate) error) error {
	// A dedicated connection is used because closing the migrate instance would
	// otherwise close the application's pool.
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}
	defer conn.Close()

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	src, err := NewSource()
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := fn(mg); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.InfoContext(ctx, "Schema already up to date", slog.String("operation", op))

			return nil
		}

		return errors.Wrapf(err, "migration %s failed", op)
	}

	m.logger.InfoContext(ctx, "Schema migration applied", slog.String("operation", op))

	return nil
}
