package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. owner_id is unique among non-null values.
type StoreModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(60);not null;index"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex:stores_email_key"`
	Address   string     `gorm:"type:varchar(400);not null"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:stores_owner_id_key,where:owner_id IS NOT NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *UserModel    `gorm:"foreignKey:OwnerID"`
	Ratings []RatingModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
