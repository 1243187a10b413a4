package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop represents the store a terminal sells for. TaxRate is a fraction
// (0.05 = 5%) applied on top of the cart subtotal at commit time.
type Shop struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   string         `gorm:"size:255" json:"address"`
	Phone     string         `gorm:"size:50" json:"phone"`
	TaxRate   float64        `gorm:"default:0" json:"tax_rate"`
	Currency  string         `gorm:"size:10;default:'KES'" json:"currency"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shop
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}
