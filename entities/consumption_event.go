package entities

import (
	"github.com/google/uuid"
)

type ConsumptionEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Calories    int       `json:"calories,omitempty"`
	Action      string    `json:"action"` // "consumed", "wasted"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
