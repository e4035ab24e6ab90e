package postgres

import (
	"context"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var storeSortColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"address": "address",
}

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindByID loads the store together with its owner, if any.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.findOne(repo.db.WithContext(ctx).Preload("Owner").Where("id = ?", id), "failed to find store by id")
}

func (repo *storeRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("email = ?", email), "failed to find store by email")
}

func (repo *storeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("owner_id = ?", ownerID), "failed to find store by owner")
}

func (repo *storeRepository) findOne(query *gorm.DB, failure string) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := query.First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	return toStoreDomain(&storeM), nil
}

func (repo *storeRepository) List(ctx context.Context, filter entity.StoreFilter) ([]*entity.Store, error) {
	query := whereContains(repo.db.WithContext(ctx).Model(&model.StoreModel{}), []substringFilter{
		{column: "name", value: filter.Name},
		{column: "email", value: filter.Email},
		{column: "address", value: filter.Address},
	})

	var storeMs []model.StoreModel
	if err := query.Order(orderClause(filter.Sort, storeSortColumns, "name")).Find(&storeMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeMs))
	for i := range storeMs {
		stores = append(stores, toStoreDomain(&storeMs[i]))
	}

	return stores, nil
}

func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Ratings").Create(storeM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err, constraintStoresOwner):
			return domainerrors.ErrOwnerAlreadyHasStore.WrapMessage("failed to create store")
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrDuplicateStoreEmail.WrapMessage("failed to create store")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrOwnerNotFound.WrapMessage("failed to create store")
		case isCheckConstraintViolation(err):
			return errCheckViolation.WrapMessage("failed to create store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count stores")
	}

	return count, nil
}
