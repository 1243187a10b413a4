package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salespoint-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Cashier").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) List(ctx context.Context, shopID uuid.UUID, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var txns []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{}).Where("shop_id = ?", shopID)

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.PaymentMethod != "" {
		query = query.Where("payment_method = ?", params.PaymentMethod)
	}
	if params.DirectOnly {
		query = query.Where("is_direct_billing = ?", true)
	}
	if params.CashierID != nil {
		query = query.Where("cashier_id = ?", *params.CashierID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Preload("Items").
		Find(&txns).Error

	return txns, total, err
}

type transactionItemRepository struct {
	db *gorm.DB
}

// NewTransactionItemRepository creates a new transaction item repository
func NewTransactionItemRepository(db *gorm.DB) domainRepo.TransactionItemRepository {
	return &transactionItemRepository{db: db}
}

func (r *transactionItemRepository) CreateBatch(ctx context.Context, items []entity.TransactionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *transactionItemRepository) GetByTransaction(ctx context.Context, transactionID uuid.UUID) ([]entity.TransactionItem, error) {
	var items []entity.TransactionItem
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
