package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salespoint-api/pkg/apperror"
	"github.com/sangkips/salespoint-api/pkg/pagination"
)

// TransactionHandler handles committed transaction queries and receipts
type TransactionHandler struct {
	checkoutService *service.CheckoutService
	receiptService  *service.ReceiptService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(checkoutService *service.CheckoutService, receiptService *service.ReceiptService) *TransactionHandler {
	return &TransactionHandler{
		checkoutService: checkoutService,
		receiptService:  receiptService,
	}
}

// List returns committed transactions with filtering and pagination
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.TransactionFilterParams{
		Pagination:    &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		DirectOnly:    req.DirectOnly,
	}
	params.Pagination.Validate()

	if req.Type != "" {
		t, err := enum.ParseTransactionType(req.Type)
		if err != nil {
			response.BadRequest(c, "Unknown transaction type")
			return
		}
		params.Type = &t
	}
	if req.CashierID != "" {
		id, err := uuid.Parse(req.CashierID)
		if err != nil {
			response.BadRequest(c, "Invalid cashier ID format")
			return
		}
		params.CashierID = &id
	}

	result, err := h.checkoutService.ListTransactions(c.Request.Context(), *shopID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved", result)
}

// Get returns one transaction with its items
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID format")
		return
	}

	txn, err := h.checkoutService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved", txn)
}

// GetReceipt renders a transaction's receipt lines without printing
// @Summary Render receipt
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /transactions/{id}/receipt [get]
func (h *TransactionHandler) GetReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID format")
		return
	}

	lines, err := h.receiptService.Render(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt rendered", gin.H{"receipt": lines})
}

// PrintReceipt renders a transaction's receipt and sends it to the printer
// @Summary Print receipt
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /transactions/{id}/receipt/print [post]
func (h *TransactionHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID format")
		return
	}

	lines, err := h.receiptService.Print(c.Request.Context(), id)
	if err != nil {
		// If the receipt rendered but the device failed, return the lines
		// with a warning so the terminal can show them on screen.
		if lines != nil {
			response.OK(c, "Receipt rendered but printing failed", gin.H{
				"receipt": lines,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", gin.H{"receipt": lines})
}

// EmailReceipt renders a transaction's receipt and mails it
// @Summary Email receipt
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body request.EmailReceiptRequest true "Recipient"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /transactions/{id}/receipt/email [post]
func (h *TransactionHandler) EmailReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID format")
		return
	}

	var req request.EmailReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.receiptService.Email(c.Request.Context(), id, req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed", gin.H{"email": req.Email})
}
