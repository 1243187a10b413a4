package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salespoint-api/pkg/apperror"
)

// SettingsHandler handles shop and receipt style settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetShop returns the shop record
// @Summary Get shop settings
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings/shop [get]
func (h *SettingsHandler) GetShop(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	shop, err := h.settingsService.GetShop(c.Request.Context(), *shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop settings retrieved", shop)
}

// UpdateShop modifies the shop record
// @Summary Update shop settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body request.UpdateShopRequest true "Shop update"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /settings/shop [put]
func (h *SettingsHandler) UpdateShop(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.settingsService.UpdateShop(c.Request.Context(), *shopID, &service.UpdateShopInput{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		TaxRate:  req.TaxRate,
		Currency: req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop settings updated", shop)
}

// GetReceiptStyle returns the shop's receipt style (defaults if unsaved)
// @Summary Get receipt style
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings/receipt-style [get]
func (h *SettingsHandler) GetReceiptStyle(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	style, err := h.settingsService.GetReceiptStyle(c.Request.Context(), *shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt style retrieved", style)
}

// UpdateReceiptStyle validates and saves the receipt style
// @Summary Update receipt style
// @Tags settings
// @Accept json
// @Produce json
// @Param request body request.UpdateReceiptStyleRequest true "Style update"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /settings/receipt-style [put]
func (h *SettingsHandler) UpdateReceiptStyle(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.UpdateReceiptStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateReceiptStyleInput{
		PaperWidth:     req.PaperWidth,
		ShopName:       req.ShopName,
		ShopAddress:    req.ShopAddress,
		ShopPhone:      req.ShopPhone,
		ThankYouText:   req.ThankYouText,
		VisitAgainText: req.VisitAgainText,
		BoldHeader:     req.BoldHeader,
		BoldTotal:      req.BoldTotal,
		LogoRef:        req.LogoRef,
	}
	if req.HeaderAlign != nil {
		a := enum.Alignment(*req.HeaderAlign)
		input.HeaderAlign = &a
	}
	if req.FooterAlign != nil {
		a := enum.Alignment(*req.FooterAlign)
		input.FooterAlign = &a
	}
	if req.Template != nil {
		t := enum.ReceiptTemplate(*req.Template)
		input.Template = &t
	}

	style, err := h.settingsService.UpdateReceiptStyle(c.Request.Context(), *shopID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt style updated", style)
}
