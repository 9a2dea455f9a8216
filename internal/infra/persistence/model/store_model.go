package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. The owner reference is nullable so
// a store can exist before an owner is linked.
type StoreModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(100);unique;not null"`
	Email     string     `gorm:"type:varchar(255);unique;not null"`
	Address   string     `gorm:"type:varchar(400);not null"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *UserModel     `gorm:"foreignKey:OwnerID"`
	Ratings []*RatingModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
