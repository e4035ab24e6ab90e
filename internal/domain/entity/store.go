package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a rateable shop, optionally owned by a store owner.
type Store struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Address   string
	OwnerID   *uuid.UUID
	Owner     *User // populated by detail lookups only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreFilter narrows a store listing with case-insensitive substring matches.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
	Sort    Sort
}

// StoreWithRating is a store enriched with aggregate rating data.
// UserRating is nil when the caller is not a user or has not rated the store.
type StoreWithRating struct {
	Store
	AverageRating float64
	RatingCount   int64
	UserRating    *int
}
