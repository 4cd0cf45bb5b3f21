package entities

import (
	"time"

	"github.com/google/uuid"
)

// PantryItem carries no stored freshness status. Days left and the
// derived tier are recomputed from ExpiryDate on every read.
type PantryItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Name          string     `json:"name"`
	Quantity      int        `json:"quantity"`
	Category      string     `json:"category"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	AddedManually bool       `json:"added_manually"`
	ReceiptScanID *string    `json:"receipt_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
