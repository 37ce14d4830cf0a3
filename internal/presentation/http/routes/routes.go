package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/config"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	domainRepo "github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/handler"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/presentation/http/middleware"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Room      *handler.RoomHandler
	Guest     *handler.GuestHandler
	Order     *handler.OrderHandler
	Sale      *handler.SaleHandler
	Purchase  *handler.PurchaseHandler
	Payment   *handler.PaymentHandler
	Balance   *handler.BalanceHandler
	Expense   *handler.ExpenseHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
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
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
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

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}

	me := rg.Group("/auth")
	{
		me.GET("/me", h.Auth.Me)
		me.POST("/change-password", h.Auth.ChangePassword)
	}

	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.Room.List)
		rooms.POST("", h.Room.Create)
		rooms.GET("/:id", h.Room.Get)
		rooms.PUT("/:id", h.Room.Update)
		rooms.DELETE("/:id", middleware.RequireRole("admin"), h.Room.Delete)
	}

	guests := rg.Group("/guests")
	{
		guests.GET("", h.Guest.List)
		guests.POST("", h.Guest.CheckIn)
		guests.GET("/:id", h.Guest.Get)
		guests.PUT("/:id", h.Guest.Update)
		guests.GET("/:id/bill", h.Guest.BillPreview)
		guests.POST("/:id/checkout", middleware.Idempotency(idempotency), h.Guest.Checkout)
		guests.DELETE("/:id", middleware.RequireRole("admin"), h.Guest.Delete)
	}

	orders := rg.Group("/food-orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/toggle-payment", h.Order.TogglePayment)
		orders.DELETE("/:id", middleware.RequireRole("admin"), h.Order.Delete)
	}

	sales := rg.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", middleware.Idempotency(idempotency), h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/payments", h.Sale.Payments)
		sales.POST("/:id/payments", middleware.IdempotencyRequired(idempotency), h.Payment.RecordForBillable(enum.BillableKindSale))
		sales.DELETE("/:id", middleware.RequireRole("admin"), h.Sale.Delete)
	}

	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", middleware.Idempotency(idempotency), h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.GET("/:id/payments", h.Purchase.Payments)
		purchases.POST("/:id/payments", middleware.IdempotencyRequired(idempotency), h.Payment.RecordForBillable(enum.BillableKindPurchase))
		purchases.DELETE("/:id", middleware.RequireRole("admin"), h.Purchase.Delete)
	}

	payments := rg.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		// Money-moving endpoint: retried submissions must replay, not re-pay.
		payments.POST("", middleware.IdempotencyRequired(idempotency), h.Payment.Record)
	}

	balances := rg.Group("/balances")
	{
		balances.GET("/customers", h.Balance.CustomerBalances)
		balances.GET("/customers/:id/statement", h.Balance.CustomerStatement)
		balances.GET("/suppliers", h.Balance.SupplierBalances)
		balances.GET("/suppliers/:id/statement", h.Balance.SupplierStatement)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", middleware.RequireRole("admin"), h.Expense.Delete)
	}

	customers := rg.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	rg.GET("/dashboard", h.Dashboard.Stats)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", middleware.RequireRole("admin"), h.Settings.Update)
	}
}
