package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// cartPayload shapes a cart for the API, adding decimal totals
func cartPayload(cart *entity.Cart) gin.H {
	lines := make([]gin.H, 0, len(cart.Lines))
	for i := range cart.Lines {
		l := &cart.Lines[i]
		lines = append(lines, gin.H{
			"identity":     l.Identity(),
			"product_id":   l.ProductID,
			"variant_id":   l.VariantID,
			"product_name": l.ProductName,
			"unit_price":   float64(l.UnitPrice) / 100,
			"quantity":     l.Quantity,
			"line_total":   float64(l.Total()) / 100,
		})
	}
	return gin.H{
		"lines": lines,
		"total": float64(cart.Total()) / 100,
	}
}

// Get returns the session's current cart
// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	cart := h.cartService.Get(GetSessionID(c))
	response.OK(c, "Cart retrieved", cartPayload(cart))
}

// AddItem adds one unit of a product or variant to the cart
// @Summary Add cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param request body request.AddCartItemRequest true "Product to add"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID format")
		return
	}

	var variantID *uuid.UUID
	if req.VariantID != nil {
		id, err := uuid.Parse(*req.VariantID)
		if err != nil {
			response.BadRequest(c, "Invalid variant ID format")
			return
		}
		variantID = &id
	}

	cart, err := h.cartService.Add(c.Request.Context(), GetSessionID(c), productID, variantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cartPayload(cart))
}

// UpdateItem sets the absolute quantity of a cart line
// @Summary Update cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param identity path string true "Cart line identity"
// @Param request body request.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /cart/items/{identity} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateQuantity(GetSessionID(c), c.Param("identity"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", cartPayload(cart))
}

// RemoveItem drops a line from the cart
// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param identity path string true "Cart line identity"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /cart/items/{identity} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.cartService.Remove(GetSessionID(c), c.Param("identity"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", cartPayload(cart))
}

// Clear empties the session's cart
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear(GetSessionID(c))
	response.OK(c, "Cart cleared", cartPayload(&entity.Cart{}))
}
