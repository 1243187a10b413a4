package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
)

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	// GetFirst returns the first (usually only) shop; single-shop deployments
	GetFirst(ctx context.Context) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
}

// ReceiptStyleRepository defines the interface for receipt style settings
type ReceiptStyleRepository interface {
	GetByShopID(ctx context.Context, shopID uuid.UUID) (*entity.ReceiptStyle, error)
	Create(ctx context.Context, style *entity.ReceiptStyle) error
	Update(ctx context.Context, style *entity.ReceiptStyle) error
}

// CashierRepository defines the interface for cashier data operations
type CashierRepository interface {
	Create(ctx context.Context, cashier *entity.Cashier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cashier, error)
	GetByEmail(ctx context.Context, email string) (*entity.Cashier, error)
}
