package handler

import (
	"time"

	"storerating/internal/domain/entity"
	"storerating/internal/usecase"
	"storerating/internal/util"

	"github.com/google/uuid"
)

// UserView is the public JSON shape of a user. It never carries the password hash.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserDetailView adds the owned store to a store owner's detail.
type UserDetailView struct {
	UserView
	Store       *StoreSummary `json:"store,omitempty"`
	StoreRating *float64      `json:"storeRating,omitempty"`
}

// PersonSummary identifies a store owner or rating author.
type PersonSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// StoreSummary identifies the store a rating or owner refers to.
type StoreSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// StoreView is a store with its aggregates. UserRating is null unless the caller
// is a user who rated the store.
type StoreView struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Address       string         `json:"address"`
	OwnerID       *uuid.UUID     `json:"ownerId"`
	Owner         *PersonSummary `json:"owner,omitempty"`
	AverageRating float64        `json:"averageRating"`
	RatingCount   int64          `json:"ratingCount"`
	UserRating    *int           `json:"userRating"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type RatingView struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	StoreID   uuid.UUID      `json:"storeId"`
	Rating    int            `json:"rating"`
	Store     *StoreSummary  `json:"store,omitempty"`
	User      *PersonSummary `json:"user,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type RatingStatsView struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
}

type RaterView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"ratedAt"`
}

type DashboardView struct {
	Store         StoreView       `json:"store"`
	Stats         RatingStatsView `json:"stats"`
	UsersWhoRated []RaterView     `json:"usersWhoRated"`
}

func newUserView(u *entity.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

func newUserDetailView(detail *usecase.UserDetail) UserDetailView {
	view := UserDetailView{UserView: newUserView(detail.User)}
	if detail.StoreRating != nil {
		rating := util.RoundAverage(*detail.StoreRating)
		view.StoreRating = &rating
	}
	if detail.Store != nil {
		view.Store = newStoreSummary(detail.Store)
	}

	return view
}

func newPersonSummary(u *entity.User) *PersonSummary {
	if u == nil {
		return nil
	}

	return &PersonSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func newStoreSummary(s *entity.Store) *StoreSummary {
	if s == nil {
		return nil
	}

	return &StoreSummary{ID: s.ID, Name: s.Name, Address: s.Address}
}

func newStoreView(s *entity.Store) StoreView {
	return StoreView{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		Owner:     newPersonSummary(s.Owner),
		CreatedAt: s.CreatedAt,
	}
}

func newRatedStoreView(s *entity.StoreWithRating) StoreView {
	view := newStoreView(&s.Store)
	view.AverageRating = util.RoundAverage(s.AverageRating)
	view.RatingCount = s.RatingCount
	view.UserRating = s.UserRating

	return view
}

func newRatedStoreViews(stores []*entity.StoreWithRating) []StoreView {
	views := make([]StoreView, 0, len(stores))
	for _, s := range stores {
		views = append(views, newRatedStoreView(s))
	}

	return views
}

func newRatingView(r *entity.Rating) RatingView {
	return RatingView{
		ID:        r.ID,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		Rating:    r.Value,
		Store:     newStoreSummary(r.Store),
		User:      newPersonSummary(r.User),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newRatingViews(ratings []*entity.Rating) []RatingView {
	views := make([]RatingView, 0, len(ratings))
	for _, r := range ratings {
		views = append(views, newRatingView(r))
	}

	return views
}

func newDashboardView(d *usecase.OwnerDashboard) DashboardView {
	raters := make([]RaterView, 0, len(d.Raters))
	for _, r := range d.Raters {
		raters = append(raters, RaterView{
			ID:      r.UserID,
			Name:    r.Name,
			Email:   r.Email,
			Rating:  r.Rating,
			RatedAt: r.RatedAt,
		})
	}

	average := util.RoundAverage(d.Stats.Average)
	store := newStoreView(d.Store)
	store.AverageRating = average
	store.RatingCount = d.Stats.Count

	return DashboardView{
		Store: store,
		Stats: RatingStatsView{
			AverageRating: average,
			TotalRatings:  d.Stats.Count,
		},
		UsersWhoRated: raters,
	}
}
