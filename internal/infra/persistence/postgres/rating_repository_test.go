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
)

var ratingColumns = []string{"id", "user_id", "store_id", "value", "created_at", "updated_at"}

const upsertPattern = `INSERT INTO "ratings" .* ON CONFLICT \("user_id","store_id"\) DO UPDATE SET .*"value"="excluded"."value".* RETURNING`

func TestRatingRepository_Upsert(t *testing.T) {
	userID, storeID, ratingID := uuid.New(), uuid.New(), uuid.New()
	firstSubmitted := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	resubmitted := firstSubmitted.Add(time.Hour)

	tests := []struct {
		name        string
		createdAt   time.Time
		updatedAt   time.Time
		value       int
		wantCreated bool
	}{
		{name: "first submission inserts", createdAt: firstSubmitted, updatedAt: firstSubmitted, value: 3, wantCreated: true},
		{name: "resubmission overwrites", createdAt: firstSubmitted, updatedAt: resubmitted, value: 5, wantCreated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRatingRepository(db)

			mock.ExpectQuery(upsertPattern).
				WillReturnRows(sqlmock.NewRows(ratingColumns).
					AddRow(ratingID.String(), userID.String(), storeID.String(), tt.value, tt.createdAt, tt.updatedAt))

			rating := &entity.Rating{UserID: userID, StoreID: storeID, Value: tt.value}
			created, err := repo.Upsert(context.Background(), rating)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCreated, created)
			assert.Equal(t, ratingID, rating.ID)
			assert.Equal(t, tt.value, rating.Value)
			assert.Equal(t, tt.updatedAt, rating.UpdatedAt.UTC())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRatingRepository_Upsert_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "store missing",
			dbErr:   &pgconn.PgError{Code: pgCodeForeignKeyViolation, ConstraintName: constraintRatingsStoreFK},
			wantErr: domainerrors.ErrStoreNotFound,
		},
		{
			name:    "user missing",
			dbErr:   &pgconn.PgError{Code: pgCodeForeignKeyViolation, ConstraintName: constraintRatingsUserFK},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name:    "value out of range",
			dbErr:   &pgconn.PgError{Code: pgCodeCheckViolation, ConstraintName: "ratings_value_check"},
			wantErr: domainerrors.ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRatingRepository(db)

			mock.ExpectQuery(upsertPattern).WillReturnError(tt.dbErr)

			_, err := repo.Upsert(context.Background(), &entity.Rating{UserID: uuid.New(), StoreID: uuid.New(), Value: 4})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRatingRepository_StatsByStore(t *testing.T) {
	tests := []struct {
		name    string
		average float64
		count   int64
	}{
		{name: "no ratings", average: 0, count: 0},
		{name: "ratings 3 and 5", average: 4.0, count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRatingRepository(db)

			storeID := uuid.New()
			mock.ExpectQuery(`SELECT COALESCE\(AVG\(value\), 0\) AS average, COUNT\(\*\) AS count FROM "ratings" WHERE store_id = \$1`).
				WithArgs(storeID).
				WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(tt.average, tt.count))

			stats, err := repo.StatsByStore(context.Background(), storeID)
			require.NoError(t, err)
			assert.Equal(t, entity.RatingStats{Average: tt.average, Count: tt.count}, stats)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRatingRepository_StatsByStores(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	rated, unrated := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT store_id, COALESCE\(AVG\(value\), 0\) AS average, COUNT\(\*\) AS count FROM "ratings" WHERE store_id IN \(\$1,\$2\) GROUP BY`).
		WithArgs(rated, unrated).
		WillReturnRows(sqlmock.NewRows([]string{"store_id", "average", "count"}).AddRow(rated.String(), 4.5, 2))

	stats, err := repo.StatsByStores(context.Background(), []uuid.UUID{rated, unrated})
	require.NoError(t, err)
	assert.Equal(t, entity.RatingStats{Average: 4.5, Count: 2}, stats[rated])
	_, ok := stats[unrated]
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_StatsByStores_EmptyInputSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	stats, err := repo.StatsByStores(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, stats)

	values, err := repo.ValuesByUser(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_ValuesByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	userID, storeID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT store_id, value FROM "ratings" WHERE user_id = \$1 AND store_id IN \(\$2\)`).
		WithArgs(userID, storeID).
		WillReturnRows(sqlmock.NewRows([]string{"store_id", "value"}).AddRow(storeID.String(), 2))

	values, err := repo.ValuesByUser(context.Background(), userID, []uuid.UUID{storeID})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{storeID: 2}, values)
}

func TestRatingRepository_ListByUser_IncludesStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	userID, storeID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "ratings" WHERE user_id = \$1 ORDER BY updated_at DESC, id ASC`).
		WillReturnRows(sqlmock.NewRows(ratingColumns).AddRow(uuid.NewString(), userID.String(), storeID.String(), 4, now, now))
	mock.ExpectQuery(`SELECT \* FROM "stores" WHERE "stores"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(storeColumns).AddRow(storeID.String(), "Corner Shop", "shop@example.com", "2 High St", nil, now, now))

	ratings, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	require.NotNil(t, ratings[0].Store)
	assert.Equal(t, "Corner Shop", ratings[0].Store.Name)
	assert.Equal(t, 4, ratings[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}
