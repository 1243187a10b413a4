package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer device channel HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the channel state and the last device error
// @Summary Printer status
// @Tags printer
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.Status())
}

// Connect opens the printer channel. Connecting never happens implicitly and
// a failed attempt is never retried without another explicit request.
// @Summary Connect printer
// @Tags printer
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /printer/connect [post]
func (h *PrinterHandler) Connect(c *gin.Context) {
	status, err := h.printerService.Connect(c.Request.Context())
	if err != nil {
		response.ErrorWithCode(c, 502, "Printer connection failed: "+err.Error())
		return
	}
	response.OK(c, "Printer connected", status)
}

// Disconnect tears the printer channel down
// @Summary Disconnect printer
// @Tags printer
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/disconnect [post]
func (h *PrinterHandler) Disconnect(c *gin.Context) {
	status, err := h.printerService.Disconnect()
	if err != nil {
		response.OK(c, "Printer disconnected with error: "+err.Error(), status)
		return
	}
	response.OK(c, "Printer disconnected", status)
}

// TestPrint sends a fixed test page through the channel
// @Summary Test print
// @Tags printer
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /printer/test [post]
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.printerService.TestPrint(c.Request.Context()); err != nil {
		response.ErrorWithCode(c, 502, "Test print failed: "+err.Error())
		return
	}
	response.OK(c, "Test page sent to printer", h.printerService.Status())
}
