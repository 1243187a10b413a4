package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"github.com/sangkips/salespoint-api/pkg/pagination"
)

// TransactionRepository defines the interface for transaction data operations.
// Transactions are insert-only: there is no Update, a committed sale is never
// mutated.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// GetWithItems retrieves a transaction with its item rows preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, shopID uuid.UUID, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
}

// TransactionItemRepository defines the interface for transaction item rows
type TransactionItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.TransactionItem) error
	GetByTransaction(ctx context.Context, transactionID uuid.UUID) ([]entity.TransactionItem, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination    *pagination.PaginationParams
	Type          *enum.TransactionType
	PaymentMethod enum.PaymentMethod
	DirectOnly    bool
	CashierID     *uuid.UUID
}
