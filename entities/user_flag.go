package entities

import (
	"github.com/google/uuid"
)

// UserFlag stores one-time UI markers (tour seen, onboarding done) per user.
type UserFlag struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex:idx_user_flag" json:"user_id"`
	Key    string    `gorm:"uniqueIndex:idx_user_flag" json:"key"`
	Value  string    `json:"value"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
