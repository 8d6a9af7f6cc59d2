package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/davidkuria/brewpos-api/internal/application/service"
	"github.com/davidkuria/brewpos-api/internal/config"
	"github.com/davidkuria/brewpos-api/internal/infrastructure/billstore"
	"github.com/davidkuria/brewpos-api/internal/infrastructure/database"
	"github.com/davidkuria/brewpos-api/internal/infrastructure/repository"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/handler"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/routes"
	"github.com/davidkuria/brewpos-api/pkg/oauth"
	"github.com/davidkuria/brewpos-api/pkg/printer"
	"github.com/davidkuria/brewpos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db, log); err != nil {
		log.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db, cfg.Database.Timezone)

	// Session bill store
	billStore := billstore.NewStore(time.Duration(cfg.Bills.TTLMinutes) * time.Minute)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	var taxRate int64
	if cfg.Tax.Enabled {
		taxRate = cfg.Tax.RatePercent
	}
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	menuService := service.NewMenuService(menuRepo)
	activeOrderService := service.NewActiveOrderService(menuRepo, taxRate)
	orderService := service.NewOrderService(orderRepo, activeOrderService, billStore, service.NewClockIDGenerator(), log)
	salesService := service.NewSalesService(orderRepo, analyticsRepo, cfg.Reports.Source)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize printer")
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, &cfg.Printer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Menu:    handler.NewMenuHandler(menuService),
		Order:   handler.NewOrderHandler(activeOrderService, orderService),
		Sales:   handler.NewSalesHandler(salesService),
		Printer: handler.NewPrinterHandler(printerService, orderService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        log,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"port":    port,
		"env":     cfg.App.Env,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
