package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salespoint-api/internal/config"
	domainRepo "github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/internal/presentation/http/handler"
	"github.com/sangkips/salespoint-api/internal/presentation/http/middleware"
	"github.com/sangkips/salespoint-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Cart        *handler.CartHandler
	Checkout    *handler.CheckoutHandler
	Transaction *handler.TransactionHandler
	Product     *handler.ProductHandler
	Settings    *handler.SettingsHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	registerCartRoutes(protected, h)
	registerCheckoutRoutes(protected, h, deps)
	registerTransactionRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerSettingsRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers) {
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PATCH("/items/:identity", h.Cart.UpdateItem)
		cart.DELETE("/items/:identity", h.Cart.RemoveItem)
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Checkout uses idempotency middleware so a retried commit replays the
	// original response instead of recording a second sale.
	protected.POST("/checkout", middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}), h.Checkout.Checkout)
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.GET("/:id/receipt", h.Transaction.GetReceipt)
		transactions.POST("/:id/receipt/print", h.Transaction.PrintReceipt)
		transactions.POST("/:id/receipt/email", h.Transaction.EmailReceipt)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("/shop", h.Settings.GetShop)
		settings.PUT("/shop", h.Settings.UpdateShop)
		settings.GET("/receipt-style", h.Settings.GetReceiptStyle)
		settings.PUT("/receipt-style", h.Settings.UpdateReceiptStyle)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/connect", h.Printer.Connect)
		printerGroup.POST("/disconnect", h.Printer.Disconnect)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
