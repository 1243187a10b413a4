package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/pkg/apperror"
	"github.com/sangkips/salespoint-api/pkg/pagination"
	"github.com/sangkips/salespoint-api/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput carries a new catalog item. Prices arrive as decimals
// and are converted to cents at this boundary.
type CreateProductInput struct {
	Name          string
	SKU           *string
	Barcode       *string
	SellingPrice  float64
	CostPrice     *float64
	StockQuantity int
	MinStockLevel int
	Variants      []CreateVariantInput
}

// CreateVariantInput carries one variant option of a new product
type CreateVariantInput struct {
	OptionName    string
	OptionValue   string
	PriceModifier float64
	StockQuantity int
}

// Create adds a product (and its variants) to the shop's catalog
func (s *ProductService) Create(ctx context.Context, shopID uuid.UUID, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.SellingPrice < 0 {
		return nil, apperror.NewBadRequestError("Selling price cannot be negative")
	}

	product := &entity.Product{
		ShopID:        shopID,
		Name:          input.Name,
		SKU:           input.SKU,
		Barcode:       input.Barcode,
		SellingPrice:  roundCents(input.SellingPrice),
		StockQuantity: input.StockQuantity,
		MinStockLevel: input.MinStockLevel,
		HasVariants:   len(input.Variants) > 0,
	}
	if input.CostPrice != nil {
		cost := roundCents(*input.CostPrice)
		product.CostPrice = &cost
	}
	if product.SKU == nil {
		sku := utils.GenerateSKU()
		product.SKU = &sku
	}

	for _, v := range input.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant{
			OptionName:    v.OptionName,
			OptionValue:   v.OptionValue,
			PriceModifier: roundCents(v.PriceModifier),
			StockQuantity: v.StockQuantity,
		})
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product with its variants
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// List retrieves products with search and pagination
func (s *ProductService) List(ctx context.Context, shopID uuid.UUID, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStock returns products at or below their minimum stock level
func (s *ProductService) GetLowStock(ctx context.Context, shopID uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, shopID)
}

// UpdateProductInput carries the mutable product fields, all optional
type UpdateProductInput struct {
	Name          *string
	SKU           *string
	Barcode       *string
	SellingPrice  *float64
	CostPrice     *float64
	StockQuantity *int
	MinStockLevel *int
}

// Update modifies a product's mutable fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SKU != nil {
		product.SKU = input.SKU
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Selling price cannot be negative")
		}
		product.SellingPrice = roundCents(*input.SellingPrice)
	}
	if input.CostPrice != nil {
		cost := roundCents(*input.CostPrice)
		product.CostPrice = &cost
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.MinStockLevel != nil {
		product.MinStockLevel = *input.MinStockLevel
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete soft-deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
