package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/application/service"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/config"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/infrastructure/database"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/infrastructure/logger"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/infrastructure/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/handler"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/routes"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.App.Env)
	defer log.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed the settings singleton and admin account
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	foodOrderRepo := repository.NewFoodOrderRepository(db)
	foodOrderItemRepo := repository.NewFoodOrderItemRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleItemRepo := repository.NewSaleItemRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	purchaseItemRepo := repository.NewPurchaseItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	roomService := service.NewRoomService(roomRepo)
	guestService := service.NewGuestService(guestRepo, roomRepo, foodOrderRepo, paymentRepo, settingsRepo)
	orderService := service.NewOrderService(foodOrderRepo, foodOrderItemRepo, guestRepo)
	saleService := service.NewSaleService(saleRepo, saleItemRepo, customerRepo, paymentRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, purchaseItemRepo, supplierRepo, paymentRepo)
	ledgerService := service.NewLedgerService(paymentRepo)
	balanceService := service.NewBalanceService(customerRepo, supplierRepo, saleRepo, purchaseRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	customerService := service.NewCustomerService(customerRepo, saleRepo)
	supplierService := service.NewSupplierService(supplierRepo, purchaseRepo)
	dashboardService := service.NewDashboardService(roomRepo, guestRepo, saleRepo, purchaseRepo, expenseRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Room:      handler.NewRoomHandler(roomService),
		Guest:     handler.NewGuestHandler(guestService),
		Order:     handler.NewOrderHandler(orderService),
		Sale:      handler.NewSaleHandler(saleService, ledgerService),
		Purchase:  handler.NewPurchaseHandler(purchaseService, ledgerService),
		Payment:   handler.NewPaymentHandler(ledgerService),
		Balance:   handler.NewBalanceHandler(balanceService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Customer:  handler.NewCustomerHandler(customerService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          log,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
