package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is one user's score for one store. At most one exists per (UserID, StoreID).
type Rating struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StoreID   uuid.UUID
	Value     int
	User      *User  // author, populated by store listings
	Store     *Store // target, populated by user listings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidRatingValue reports whether v is an allowed star value.
func IsValidRatingValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}

// RatingStats is the aggregate over a store's ratings. Both fields are zero when
// the store has no ratings.
type RatingStats struct {
	Average float64
	Count   int64
}

// DashboardStats holds the global entity counts shown to administrators.
type DashboardStats struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}
