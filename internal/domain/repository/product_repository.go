package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetVariant(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, shopID uuid.UUID, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context, shopID uuid.UUID) ([]entity.Product, error)
	// DecrementStock subtracts qty from a single product row with a plain
	// UPDATE ... SET stock_quantity = stock_quantity - qty. There is no
	// optimistic-concurrency check: concurrent terminals decrement on a
	// last-write-wins basis (known, documented gap).
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
	// DecrementVariantStock is DecrementStock against a variant row
	DecrementVariantStock(ctx context.Context, id uuid.UUID, qty int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}
