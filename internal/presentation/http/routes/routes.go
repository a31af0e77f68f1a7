package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/papeleria-gasparin/pos-api/internal/config"
	domainRepo "github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/handler"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/middleware"
	"github.com/papeleria-gasparin/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Pos       *handler.PosHandler
	Sale      *handler.SaleHandler
	Product   *handler.ProductHandler
	Attribute *handler.AttributeHandler
	Unit      *handler.UnitHandler
	Order     *handler.OrderHandler
	Purchase  *handler.PurchaseHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
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

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Replay cached responses for repeated Idempotency-Key requests
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/profile", h.Auth.Profile)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard/stats", middleware.RequirePermission("view-dashboard"), h.Dashboard.Stats)

	registerPosRoutes(protected, h)
	registerSaleRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerOrderRoutes(protected, h)
	registerPurchaseRoutes(protected, h)
	registerContactRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerPosRoutes(protected *gin.RouterGroup, h *Handlers) {
	pos := protected.Group("/pos")
	pos.Use(middleware.RequirePermission("manage-pos"))
	{
		pos.GET("/state", h.Pos.GetState)
		pos.POST("/session/open", h.Pos.OpenSession)
		pos.POST("/session/close", h.Pos.CloseSession)
		pos.POST("/switch-user", h.Pos.SwitchUser)

		pos.POST("/cart", h.Pos.AddToCart)
		pos.PUT("/cart/:productId", h.Pos.UpdateCartItem)
		pos.DELETE("/cart/:productId", h.Pos.RemoveCartItem)
		pos.DELETE("/cart", h.Pos.ClearCart)

		pos.POST("/checkout/start", h.Pos.StartCheckout)
		pos.POST("/checkout/method", h.Pos.SelectMethod)
		pos.POST("/checkout/keys", h.Pos.PressKey)
		pos.POST("/checkout/confirm", h.Pos.ConfirmPayment)
		pos.POST("/checkout/cancel", h.Pos.CancelPayment)
		pos.POST("/checkout/new-order", h.Pos.StartNewOrder)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequirePermission("manage-sales"))
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/reprint", h.Sale.Reprint)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	products.Use(middleware.RequirePermission("manage-products"))
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.ListLowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	attributes := protected.Group("/attributes")
	attributes.Use(middleware.RequirePermission("manage-attributes"))
	{
		attributes.POST("", h.Attribute.Create)
		attributes.GET("", h.Attribute.List)
		attributes.GET("/:id", h.Attribute.Get)
		attributes.PUT("/:id", h.Attribute.Update)
		attributes.DELETE("/:id", h.Attribute.Delete)
	}

	units := protected.Group("/units")
	units.Use(middleware.RequirePermission("manage-units"))
	{
		units.POST("", h.Unit.Create)
		units.GET("", h.Unit.List)
		units.GET("/:id", h.Unit.Get)
		units.PUT("/:id", h.Unit.Update)
		units.DELETE("/:id", h.Unit.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("manage-orders"))
	{
		orders.POST("", h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/pending", h.Order.ListPending)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/pay", h.Order.PayDue)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	purchases.Use(middleware.RequirePermission("manage-purchases"))
	{
		purchases.POST("", h.Purchase.Create)
		purchases.GET("", h.Purchase.List)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.POST("/:id/receive", h.Purchase.Receive)
		purchases.POST("/:id/cancel", h.Purchase.Cancel)
	}
}

func registerContactRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequirePermission("manage-suppliers"))
	{
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"), middleware.RequirePermission("manage-users"))
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
