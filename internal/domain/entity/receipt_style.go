package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Receipt paper width limits in characters. Widths outside this range are a
// validation error, never silently clamped.
const (
	MinPaperWidth = 24
	MaxPaperWidth = 48
)

// ReceiptStyle holds the shop-scoped receipt appearance settings
type ReceiptStyle struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ShopID         uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex" json:"shop_id"`
	PaperWidth     int                  `gorm:"default:32" json:"paper_width"`
	HeaderAlign    enum.Alignment       `gorm:"size:10;default:'center'" json:"header_align"`
	FooterAlign    enum.Alignment       `gorm:"size:10;default:'center'" json:"footer_align"`
	ShopName       string               `gorm:"size:255" json:"shop_name"`
	ShopAddress    string               `gorm:"size:255" json:"shop_address"`
	ShopPhone      string               `gorm:"size:50" json:"shop_phone"`
	ThankYouText   string               `gorm:"size:255;default:'Thank you for shopping!'" json:"thank_you_text"`
	VisitAgainText string               `gorm:"size:255;default:'Visit again'" json:"visit_again_text"`
	BoldHeader     bool                 `gorm:"default:true" json:"bold_header"`
	BoldTotal      bool                 `gorm:"default:true" json:"bold_total"`
	Template       enum.ReceiptTemplate `gorm:"size:20;default:'classic'" json:"template"`
	LogoRef        *string              `gorm:"size:255" json:"logo_ref,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	DeletedAt      gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt style
func (s *ReceiptStyle) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptStyle model
func (ReceiptStyle) TableName() string {
	return "receipt_styles"
}

// DefaultReceiptStyle returns the style used before a shop customises anything
func DefaultReceiptStyle(shopID uuid.UUID) *ReceiptStyle {
	return &ReceiptStyle{
		ShopID:         shopID,
		PaperWidth:     32,
		HeaderAlign:    enum.AlignCenter,
		FooterAlign:    enum.AlignCenter,
		ThankYouText:   "Thank you for shopping!",
		VisitAgainText: "Visit again",
		BoldHeader:     true,
		BoldTotal:      true,
		Template:       enum.TemplateClassic,
	}
}
