package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	IsVerified bool      `json:"is_verified"`

	PantryItems []*PantryItem `gorm:"foreignKey:UserID"`
	Timestamp
}
