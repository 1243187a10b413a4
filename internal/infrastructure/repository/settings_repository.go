package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salespoint-api/internal/domain/repository"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) GetFirst(ctx context.Context) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

type receiptStyleRepository struct {
	db *gorm.DB
}

// NewReceiptStyleRepository creates a new receipt style repository
func NewReceiptStyleRepository(db *gorm.DB) domainRepo.ReceiptStyleRepository {
	return &receiptStyleRepository{db: db}
}

func (r *receiptStyleRepository) GetByShopID(ctx context.Context, shopID uuid.UUID) (*entity.ReceiptStyle, error) {
	var style entity.ReceiptStyle
	err := r.db.WithContext(ctx).Where("shop_id = ?", shopID).First(&style).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &style, err
}

func (r *receiptStyleRepository) Create(ctx context.Context, style *entity.ReceiptStyle) error {
	return r.db.WithContext(ctx).Create(style).Error
}

func (r *receiptStyleRepository) Update(ctx context.Context, style *entity.ReceiptStyle) error {
	return r.db.WithContext(ctx).Save(style).Error
}

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *gorm.DB) domainRepo.CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) Create(ctx context.Context, cashier *entity.Cashier) error {
	return r.db.WithContext(ctx).Create(cashier).Error
}

func (r *cashierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}

func (r *cashierRepository) GetByEmail(ctx context.Context, email string) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}
