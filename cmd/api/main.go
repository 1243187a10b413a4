package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/internal/config"
	"github.com/sangkips/salespoint-api/internal/infrastructure/database"
	"github.com/sangkips/salespoint-api/internal/infrastructure/repository"
	"github.com/sangkips/salespoint-api/internal/presentation/http/handler"
	"github.com/sangkips/salespoint-api/internal/presentation/http/routes"
	"github.com/sangkips/salespoint-api/pkg/email"
	"github.com/sangkips/salespoint-api/pkg/printer"
	"github.com/sangkips/salespoint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	itemRepo := repository.NewTransactionItemRepository(db)
	shopRepo := repository.NewShopRepository(db)
	styleRepo := repository.NewReceiptStyleRepository(db)
	cashierRepo := repository.NewCashierRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize printer channel. The channel starts disconnected; a client
	// must connect it explicitly through the API.
	transport, err := printer.NewTransportFromConfig(cfg.Printer.Type, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer transport: %v", err)
		transport = printer.NewLoopback()
	}
	channel := printer.NewChannel(transport)

	// Initialize services
	authService := service.NewAuthService(cashierRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(productRepo)
	checkoutService := service.NewCheckoutService(txnRepo, itemRepo, productRepo, shopRepo, cartService)
	receiptService := service.NewReceiptService(txnRepo, shopRepo, styleRepo, cashierRepo, channel, emailService)
	printerService := service.NewPrinterService(channel)
	settingsService := service.NewSettingsService(shopRepo, styleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Cart:        handler.NewCartHandler(cartService),
		Checkout:    handler.NewCheckoutHandler(checkoutService),
		Transaction: handler.NewTransactionHandler(checkoutService, receiptService),
		Product:     handler.NewProductHandler(productService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
