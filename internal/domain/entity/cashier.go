package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cashier represents a terminal operator who can commit sales
type Cashier struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Active       bool           `gorm:"default:true" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cashier
func (c *Cashier) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cashier model
func (Cashier) TableName() string {
	return "cashiers"
}
