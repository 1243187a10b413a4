package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction represents a committed sale or refund. Rows are immutable once
// persisted: amounts, method, and flags are never updated afterwards.
type Transaction struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ShopID          uuid.UUID            `gorm:"type:uuid;not null;index" json:"shop_id"`
	CashierID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"cashier_id"`
	Type            enum.TransactionType `gorm:"default:0" json:"type"`
	BillNo          string               `gorm:"size:100;unique;not null" json:"bill_no"`
	SubTotal        int64                `gorm:"default:0" json:"-"` // Stored in cents
	TaxAmount       int64                `gorm:"default:0" json:"-"` // Stored in cents
	DiscountAmount  int64                `gorm:"default:0" json:"-"` // Stored in cents, reserved (always 0)
	TotalAmount     int64                `gorm:"default:0" json:"-"` // Stored in cents
	PaymentMethod   enum.PaymentMethod   `gorm:"size:50;not null" json:"payment_method"`
	IsDirectBilling bool                 `gorm:"default:false" json:"is_direct_billing"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Shop    Shop              `gorm:"foreignKey:ShopID" json:"-"`
	Cashier Cashier           `gorm:"foreignKey:CashierID" json:"-"`
	Items   []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		SubTotal       float64 `json:"subtotal"`
		TaxAmount      float64 `json:"tax_amount"`
		DiscountAmount float64 `json:"discount_amount"`
		TotalAmount    float64 `json:"total_amount"`
	}{
		Alias:          Alias(t),
		SubTotal:       float64(t.SubTotal) / 100,
		TaxAmount:      float64(t.TaxAmount) / 100,
		DiscountAmount: float64(t.DiscountAmount) / 100,
		TotalAmount:    float64(t.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// GetTotalDecimal returns the total as a decimal
func (t *Transaction) GetTotalDecimal() float64 {
	return float64(t.TotalAmount) / 100
}

// TransactionItem represents a line item of a committed transaction.
// ProductName and UnitPrice are snapshots taken from the cart at commit time,
// never re-read from the catalog, so later price edits cannot rewrite history.
type TransactionItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantID     *uuid.UUID     `gorm:"type:uuid;index" json:"variant_id,omitempty"`
	ProductName   string         `gorm:"size:255;not null" json:"product_name"`
	UnitPrice     int64          `gorm:"not null" json:"-"` // Stored in cents
	Quantity      int            `gorm:"not null" json:"quantity"`
	TotalPrice    int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
	Product     Product     `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i TransactionItem) MarshalJSON() ([]byte, error) {
	type Alias TransactionItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(i),
		UnitPrice:  float64(i.UnitPrice) / 100,
		TotalPrice: float64(i.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new transaction item
func (i *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}
