package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/config"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/handler"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer *handler.CustomerHandler
	Product  *handler.ProductHandler
	Employee *handler.EmployeeHandler
	Receipt  *handler.ReceiptHandler
	Report   *handler.ReportHandler
	Status   *handler.StatusHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerRoutes(v1, h)
	}

	return router
}

func registerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	employees := v1.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.POST("", h.Employee.Create)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
	}

	// Receipts are immutable: no update route.
	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.DELETE("/:id", h.Receipt.Delete)
	}

	v1.GET("/reports", h.Report.Generate)

	status := v1.Group("/status")
	{
		status.GET("", h.Status.Get)
		status.DELETE("/errors", h.Status.ClearErrors)
		status.POST("/reload", h.Status.Reload)
	}
}
