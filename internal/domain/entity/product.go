package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable catalog item
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	SKU           *string        `gorm:"size:100;uniqueIndex" json:"sku,omitempty"`
	Barcode       *string        `gorm:"size:100" json:"barcode,omitempty"`
	SellingPrice  int64          `gorm:"default:0" json:"-"` // Stored in cents
	CostPrice     *int64         `json:"-"`                  // Stored in cents, optional
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	MinStockLevel int            `gorm:"default:0" json:"min_stock_level"`
	HasVariants   bool           `gorm:"default:false" json:"has_variants"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shop     Shop             `gorm:"foreignKey:ShopID" json:"-"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	out := &struct {
		Alias
		SellingPrice float64  `json:"selling_price"`
		CostPrice    *float64 `json:"cost_price,omitempty"`
	}{
		Alias:        Alias(p),
		SellingPrice: float64(p.SellingPrice) / 100,
	}
	if p.CostPrice != nil {
		cost := float64(*p.CostPrice) / 100
		out.CostPrice = &cost
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}

// ProductVariant represents one option of a product (e.g. Size = "L").
// PriceModifier is additive: the effective unit price of a variant line is
// the product's selling price plus the modifier.
type ProductVariant struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	OptionName    string         `gorm:"size:100;not null" json:"option_name"`
	OptionValue   string         `gorm:"size:100;not null" json:"option_value"`
	PriceModifier int64          `gorm:"default:0" json:"-"` // Stored in cents, may be negative
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (v ProductVariant) MarshalJSON() ([]byte, error) {
	type Alias ProductVariant
	return json.Marshal(&struct {
		Alias
		PriceModifier float64 `json:"price_modifier"`
	}{
		Alias:         Alias(v),
		PriceModifier: float64(v.PriceModifier) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new variant
func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductVariant model
func (ProductVariant) TableName() string {
	return "product_variants"
}
