package database

import (
	"fmt"
	"log"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/config"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/google/uuid"
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
		// Staff accounts
		&entity.User{},

		// Property entities
		&entity.Room{},
		&entity.Guest{},

		// Counterparties
		&entity.Customer{},
		&entity.Supplier{},

		// Billable entities
		&entity.FoodOrder{},
		&entity.FoodOrderItem{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Purchase{},
		&entity.PurchaseItem{},

		// Ledger and bookkeeping
		&entity.PaymentRecord{},
		&entity.Expense{},

		// System entities
		&entity.BusinessSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (admin user, business settings)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Ensure the singleton settings row exists
	var settings entity.BusinessSettings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.BusinessSettings{
			ID:           uuid.New(),
			PropertyName: viper.GetString("PROPERTY_NAME"),
			Currency:     "PKR",
			TaxEnabled:   false,
			TaxRate:      0,
		}
		if settings.PropertyName == "" {
			settings.PropertyName = "My Hotel"
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create business settings: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				// Split admin name into first and last name
				firstName := adminName
				lastName := ""
				for i, c := range adminName {
					if c == ' ' {
						firstName = adminName[:i]
						lastName = adminName[i+1:]
						break
					}
				}
				adminUser := entity.User{
					ID:        uuid.New(),
					FirstName: firstName,
					LastName:  lastName,
					Email:     adminEmail,
					Password:  string(hashedPassword),
					Role:      "admin",
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
