package request

// CreateProductRequest represents a product creation request. Prices are
// decimals; they are converted to cents inside the service.
type CreateProductRequest struct {
	Name          string               `json:"name" binding:"required,min=1,max=255"`
	SKU           *string              `json:"sku" binding:"omitempty,max=100"`
	Barcode       *string              `json:"barcode" binding:"omitempty,max=100"`
	SellingPrice  float64              `json:"selling_price" binding:"min=0"`
	CostPrice     *float64             `json:"cost_price" binding:"omitempty,min=0"`
	StockQuantity int                  `json:"stock_quantity" binding:"min=0"`
	MinStockLevel int                  `json:"min_stock_level" binding:"min=0"`
	Variants      []CreateVariantInput `json:"variants" binding:"omitempty,dive"`
}

// CreateVariantInput represents one variant option in a product creation
type CreateVariantInput struct {
	OptionName    string  `json:"option_name" binding:"required,max=100"`
	OptionValue   string  `json:"option_value" binding:"required,max=100"`
	PriceModifier float64 `json:"price_modifier"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=255"`
	SKU           *string  `json:"sku" binding:"omitempty,max=100"`
	Barcode       *string  `json:"barcode" binding:"omitempty,max=100"`
	SellingPrice  *float64 `json:"selling_price" binding:"omitempty,min=0"`
	CostPrice     *float64 `json:"cost_price" binding:"omitempty,min=0"`
	StockQuantity *int     `json:"stock_quantity" binding:"omitempty,min=0"`
	MinStockLevel *int     `json:"min_stock_level" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
