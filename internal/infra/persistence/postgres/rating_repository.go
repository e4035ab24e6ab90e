package postgres

import (
	"context"
	"time"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert relies on the (user_id, store_id) unique constraint: concurrent submissions
// for the same pair resolve inside PostgreSQL to a single row holding the last value.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	now := time.Now().UTC()
	ratingM := fromRatingDomain(rating)
	ratingM.CreatedAt = now
	ratingM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Omit("User", "Store").
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(ratingM).Error
	if err != nil {
		switch {
		case isForeignKeyConstraintViolation(err, constraintRatingsStoreFK):
			return false, domainerrors.ErrStoreNotFound.WrapMessage("failed to submit rating")
		case isForeignKeyConstraintViolation(err, constraintRatingsUserFK):
			return false, domainerrors.ErrUserNotFound.WrapMessage("failed to submit rating")
		case isCheckConstraintViolation(err):
			return false, domainerrors.ErrInvalidRating.WrapMessage("failed to submit rating")
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	// An update keeps the original created_at, so only a fresh insert returns equal timestamps.
	created := ratingM.CreatedAt.Equal(ratingM.UpdatedAt)

	rating.ID = ratingM.ID
	rating.Value = ratingM.Value
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return created, nil
}

func (repo *ratingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error) {
	return repo.list(repo.db.WithContext(ctx).Preload("Store").Where("user_id = ?", userID), "failed to list ratings by user")
}

func (repo *ratingRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error) {
	return repo.list(repo.db.WithContext(ctx).Preload("User").Where("store_id = ?", storeID), "failed to list ratings by store")
}

func (repo *ratingRepository) list(query *gorm.DB, failure string) ([]*entity.Rating, error) {
	var ratingMs []model.RatingModel
	if err := query.Order("updated_at DESC, id ASC").Find(&ratingMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	ratings := make([]*entity.Rating, 0, len(ratingMs))
	for i := range ratingMs {
		ratings = append(ratings, toRatingDomain(&ratingMs[i]))
	}

	return ratings, nil
}

// StatsByStore never yields NULL: AVG over no rows is coalesced to zero.
func (repo *ratingRepository) StatsByStore(ctx context.Context, storeID uuid.UUID) (entity.RatingStats, error) {
	var row model.RatingStatsRow

	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(value), 0) AS average, COUNT(*) AS count").
		Where("store_id = ?", storeID).
		Scan(&row).Error
	if err != nil {
		return entity.RatingStats{}, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate store ratings")
	}

	return entity.RatingStats{Average: row.Average, Count: row.Count}, nil
}

func (repo *ratingRepository) StatsByStores(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID]entity.RatingStats, error) {
	stats := make(map[uuid.UUID]entity.RatingStats, len(storeIDs))
	if len(storeIDs) == 0 {
		return stats, nil
	}

	var rows []model.RatingStatsRow
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("store_id, COALESCE(AVG(value), 0) AS average, COUNT(*) AS count").
		Where("store_id IN ?", storeIDs).
		Group("store_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate ratings")
	}

	for _, row := range rows {
		stats[row.StoreID] = entity.RatingStats{Average: row.Average, Count: row.Count}
	}

	return stats, nil
}

func (repo *ratingRepository) ValuesByUser(ctx context.Context, userID uuid.UUID, storeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	values := make(map[uuid.UUID]int, len(storeIDs))
	if len(storeIDs) == 0 {
		return values, nil
	}

	var rows []model.RatingValueRow
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("store_id, value").
		Where("user_id = ? AND store_id IN ?", userID, storeIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user ratings")
	}

	for _, row := range rows {
		values[row.StoreID] = row.Value
	}

	return values, nil
}

func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count ratings")
	}

	return count, nil
}
