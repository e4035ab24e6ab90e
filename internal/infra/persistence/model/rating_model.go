package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. One row per (user_id, store_id).
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ratings_user_id_store_id_key,priority:1"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ratings_user_id_store_id_key,priority:2;index"`
	Value     int       `gorm:"type:smallint;not null;check:ratings_value_check,value >= 1 AND value <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// RatingStatsRow is the scan target of the per-store aggregate queries.
type RatingStatsRow struct {
	StoreID uuid.UUID
	Average float64
	Count   int64
}

// RatingValueRow is the scan target of a user's rating values per store.
type RatingValueRow struct {
	StoreID uuid.UUID
	Value   int
}
