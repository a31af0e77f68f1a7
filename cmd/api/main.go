package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/papeleria-gasparin/pos-api/internal/application/checkout"
	"github.com/papeleria-gasparin/pos-api/internal/application/service"
	"github.com/papeleria-gasparin/pos-api/internal/config"
	"github.com/papeleria-gasparin/pos-api/internal/infrastructure/database"
	"github.com/papeleria-gasparin/pos-api/internal/infrastructure/repository"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/handler"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/routes"
	"github.com/papeleria-gasparin/pos-api/pkg/oauth"
	"github.com/papeleria-gasparin/pos-api/pkg/printer"
	"github.com/papeleria-gasparin/pos-api/pkg/utils"
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
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	attributeRepo := repository.NewAttributeRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	kvRepo := repository.NewKVRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Checkout sessions, one per operator, persisted through the KV store
	registry := checkout.NewRegistry(kvRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, attributeRepo, unitRepo)
	attributeService := service.NewAttributeService(attributeRepo)
	unitService := service.NewUnitService(unitRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo, supplierRepo)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, thermalPrinter, cfg.Printer.Width)
	posService := service.NewPosService(registry, productRepo, saleService)
	dashboardService := service.NewDashboardService(saleRepo, orderRepo, productRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, posService),
		Pos:       handler.NewPosHandler(posService),
		Sale:      handler.NewSaleHandler(saleService),
		Product:   handler.NewProductHandler(productService),
		Attribute: handler.NewAttributeHandler(attributeService),
		Unit:      handler.NewUnitHandler(unitService),
		Order:     handler.NewOrderHandler(orderService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Customer:  handler.NewCustomerHandler(customerService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

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
