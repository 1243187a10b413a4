package database

import (
	"fmt"
	"log"

	"github.com/sangkips/salespoint-api/internal/config"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Shop and staff
		&entity.Shop{},
		&entity.Cashier{},

		// Catalog
		&entity.Product{},
		&entity.ProductVariant{},

		// Sales
		&entity.Transaction{},
		&entity.TransactionItem{},

		// Settings and system
		&entity.ReceiptStyle{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with a default shop, its receipt style,
// and an initial cashier when configured via environment variables.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var shop entity.Shop
	if err := db.Order("created_at ASC").First(&shop).Error; err != nil {
		shop = entity.Shop{
			Name:     "Salespoint Store",
			TaxRate:  0.05,
			Currency: "KES",
		}
		if err := db.Create(&shop).Error; err != nil {
			return fmt.Errorf("failed to seed default shop: %w", err)
		}
		log.Printf("Default shop created: %s", shop.ID)
	}

	var style entity.ReceiptStyle
	if err := db.Where("shop_id = ?", shop.ID).First(&style).Error; err != nil {
		def := entity.DefaultReceiptStyle(shop.ID)
		def.ShopName = shop.Name
		if err := db.Create(def).Error; err != nil {
			return fmt.Errorf("failed to seed default receipt style: %w", err)
		}
	}

	// Create the initial cashier if configured via environment variables
	cashierEmail := viper.GetString("CASHIER_EMAIL")
	cashierPassword := viper.GetString("CASHIER_PASSWORD")
	cashierName := viper.GetString("CASHIER_NAME")

	if cashierEmail != "" && cashierPassword != "" {
		var existing entity.Cashier
		if err := db.Where("email = ?", cashierEmail).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cashierPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash cashier password: %v", err)
			} else {
				if cashierName == "" {
					cashierName = "Cashier"
				}
				cashier := entity.Cashier{
					ShopID:       shop.ID,
					Name:         cashierName,
					Email:        cashierEmail,
					PasswordHash: string(hashedPassword),
					Active:       true,
				}
				if err := db.Create(&cashier).Error; err != nil {
					log.Printf("Warning: failed to create initial cashier: %v", err)
				} else {
					log.Printf("Initial cashier created: %s", cashierEmail)
				}
			}
		} else {
			log.Printf("Initial cashier already exists: %s", cashierEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
