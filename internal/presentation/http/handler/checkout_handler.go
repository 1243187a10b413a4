package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salespoint-api/pkg/apperror"
)

// CheckoutHandler handles sale commit HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout commits the session's cart (or a direct amount) as a sale
// @Summary Commit a sale
// @Description Commit the cart as a transaction, or bill a direct amount
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body request.CheckoutRequest true "Checkout input"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cashierID := GetCashierID(c)
	shopID := GetShopID(c)
	if cashierID == nil || shopID == nil {
		response.Error(c, apperror.ErrMissingActorOrShop)
		return
	}

	input := &service.CheckoutInput{
		CashierID:     *cashierID,
		ShopID:        *shopID,
		SessionID:     GetSessionID(c),
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		DirectAmount:  req.DirectAmount,
	}

	result, err := h.checkoutService.Commit(c.Request.Context(), input)
	if err != nil {
		// A durable header with a failed later step is not a plain error:
		// the sale exists and must be reported alongside the failure.
		if result != nil && result.PartialFailure() {
			appErr := apperror.GetAppError(err)
			c.JSON(http.StatusInternalServerError, response.APIResponse{
				Success: false,
				Message: appErr.Message,
				Data:    result,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale committed", result)
}
