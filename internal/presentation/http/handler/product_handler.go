package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salespoint-api/pkg/apperror"
	"github.com/sangkips/salespoint-api/pkg/pagination"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create adds a product to the catalog
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body request.CreateProductRequest true "Product data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		SellingPrice:  req.SellingPrice,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.CreateVariantInput{
			OptionName:    v.OptionName,
			OptionValue:   v.OptionValue,
			PriceModifier: v.PriceModifier,
			StockQuantity: v.StockQuantity,
		})
	}

	product, err := h.productService.Create(c.Request.Context(), *shopID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// List returns catalog products with search and pagination
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		LowStock:   req.LowStock,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	params.Pagination.Validate()

	result, err := h.productService.List(c.Request.Context(), *shopID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// GetLowStock returns products at or below their minimum stock level
// @Summary Low stock products
// @Tags products
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products/low-stock [get]
func (h *ProductHandler) GetLowStock(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	products, err := h.productService.GetLowStock(c.Request.Context(), *shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved", products)
}

// Get returns one product with its variants
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Update modifies a product's mutable fields
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request.UpdateProductRequest true "Product update"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID format")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &service.UpdateProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		SellingPrice:  req.SellingPrice,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete removes a product from the catalog
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
