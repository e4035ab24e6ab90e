package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
)

var userColumns = []string{"id", "name", "email", "password_hash", "address", "role", "created_at", "updated_at"}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	userID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), "Alice Anderson", "alice@example.com", "hash", "1 Main St", "store_owner", now, now))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, entity.RoleStoreOwner, user.Role)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		userID := uuid.New()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))

		user := &entity.User{Name: "Alice Anderson", Email: "alice@example.com", PasswordHash: "hash", Address: "1 Main St", Role: entity.RoleUser}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.Equal(t, userID, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: pgCodeUniqueViolation, ConstraintName: "users_email_key"})

		err := repo.Create(context.Background(), &entity.User{Email: "alice@example.com", Role: entity.RoleUser})
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("check violation is a validation error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: pgCodeCheckViolation, ConstraintName: "users_address_check"})

		err := repo.Create(context.Background(), &entity.User{Name: "Al", Email: "al@example.com", Role: entity.RoleUser})
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.HTTPCode())
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other failure is a database error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(errors.New("connection reset"))

		err := repo.Create(context.Background(), &entity.User{Email: "alice@example.com", Role: entity.RoleUser})
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}

func TestUserRepository_List_FiltersAndSort(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE name ILIKE \$1 AND role ILIKE \$2 ORDER BY email DESC, id ASC`).
		WithArgs(`%ann\%%`, "%owner%").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.NewString(), "Anna", "anna@example.com", "h", "addr", "store_owner", time.Now(), time.Now()))

	users, err := repo.List(context.Background(), entity.UserFilter{
		Name: "ann%",
		Role: " owner ",
		Sort: entity.Sort{Field: "email", Order: entity.SortDesc},
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Anna", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_UnknownSortFallsBackToName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY name ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.List(context.Background(), entity.UserFilter{Sort: entity.Sort{Field: "password_hash; DROP TABLE users"}})
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET .*"password_hash"=.* WHERE id = `).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdatePasswordHash(context.Background(), uuid.New(), "new-hash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePasswordHash(context.Background(), uuid.New(), "new-hash")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
