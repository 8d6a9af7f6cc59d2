package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/davidkuria/brewpos-api/internal/config"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/handler"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/middleware"
	"github.com/davidkuria/brewpos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Menu    *handler.MenuHandler
	Order   *handler.OrderHandler
	Sales   *handler.SalesHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.SessionMiddleware())

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
		registerPublicMenuRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-session rate limiter
		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

// Menu reads are public so the order screen works before sign-in.
func registerPublicMenuRoutes(v1 *gin.RouterGroup, h *Handlers) {
	menu := v1.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.GET("/categories", h.Menu.ListByCategory)
		menu.GET("/:id", h.Menu.Get)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.SaveProfile)

	// Menu mutations (Admin)
	registerMenuRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h)

	// Sales reports
	registerSalesRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	menu.Use(middleware.RequireRole("admin"))
	{
		menu.POST("", h.Menu.Create)
		menu.PUT("/:id", h.Menu.Update)
		menu.DELETE("/:id", h.Menu.Delete)
		menu.DELETE("", h.Menu.ClearAll)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("/active", h.Order.GetActive)
		orders.DELETE("/active", h.Order.ClearActive)
		orders.DELETE("/active/all", middleware.RequireRole("admin"), h.Order.ClearAllActive)
		orders.POST("/active/items", h.Order.AddItem)
		orders.PUT("/active/items", h.Order.UpdateQuantity)
		orders.DELETE("/active/items/:id", h.Order.RemoveItem)
		orders.PUT("/active/discount", h.Order.SetDiscount)
		orders.POST("/finalize", h.Order.Finalize)
		orders.GET("/bill", h.Order.GetBill)
		orders.DELETE("/bill", h.Order.ClearBill)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.DELETE("/:id", middleware.RequireRole("admin"), h.Order.Delete)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("/daily", h.Sales.DailySummary)
		sales.GET("/previous-day", h.Sales.PreviousDaySummary)
		sales.GET("/items", h.Sales.ItemWiseSales)
		sales.GET("/dates", h.Sales.DateWiseSales)
		sales.GET("/monthly", h.Sales.MonthlySales)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.Auth.ListUsers)
		users.PUT("/:id/role", h.Auth.AssignRole)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/bill", h.Printer.PrintBill)
	}
}
