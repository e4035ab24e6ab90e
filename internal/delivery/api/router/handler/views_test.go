package handler

import (
	"testing"
	"time"

	"storerating/internal/domain/entity"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews_RoundAverages(t *testing.T) {
	store := entity.Store{ID: uuid.New(), Name: "Corner Bakery"}

	t.Run("store listing", func(t *testing.T) {
		view := newRatedStoreView(&entity.StoreWithRating{Store: store, AverageRating: 11.0 / 3, RatingCount: 3})

		assert.Equal(t, 3.67, view.AverageRating)
		assert.Equal(t, int64(3), view.RatingCount)
	})

	t.Run("owner dashboard", func(t *testing.T) {
		view := newDashboardView(&usecase.OwnerDashboard{
			Store: &store,
			Stats: entity.RatingStats{Average: 13.0 / 3, Count: 3},
			Raters: []usecase.Rater{
				{UserID: uuid.New(), Name: "Alice Anderson", Email: "alice@example.com", Rating: 5, RatedAt: time.Now()},
			},
		})

		assert.Equal(t, 4.33, view.Stats.AverageRating)
		assert.Equal(t, 4.33, view.Store.AverageRating)
		assert.Len(t, view.UsersWhoRated, 1)
	})

	t.Run("user detail", func(t *testing.T) {
		average := 2.0 / 3
		view := newUserDetailView(&usecase.UserDetail{
			User:        &entity.User{ID: uuid.New(), Role: entity.RoleStoreOwner},
			Store:       &store,
			StoreRating: &average,
		})

		require.NotNil(t, view.StoreRating)
		assert.Equal(t, 0.67, *view.StoreRating)
	})
}
