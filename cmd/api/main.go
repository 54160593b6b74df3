package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/application/service"
	"github.com/shoplite/shopmanager-api/internal/config"
	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	domaingw "github.com/shoplite/shopmanager-api/internal/domain/gateway"
	"github.com/shoplite/shopmanager-api/internal/infrastructure/database"
	infragw "github.com/shoplite/shopmanager-api/internal/infrastructure/gateway"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/handler"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the backend gateways
	gateways, err := buildGateways(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize gateways: %v", err)
	}

	// Initialize the data service and hydrate the stores. A failing backend
	// is absorbed into fallback data, so startup always succeeds.
	dataService := service.NewDataService(
		gateways.customers,
		gateways.products,
		gateways.employees,
		gateways.receipts,
	)
	dataService.Load(context.Background())

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer: handler.NewCustomerHandler(dataService),
		Product:  handler.NewProductHandler(dataService),
		Employee: handler.NewEmployeeHandler(dataService),
		Receipt:  handler.NewReceiptHandler(dataService),
		Report:   handler.NewReportHandler(dataService),
		Status:   handler.NewStatusHandler(dataService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, gateway driver: %s", cfg.App.Env, cfg.Gateway.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

type gateways struct {
	customers domaingw.Gateway[entity.Customer]
	products  domaingw.Gateway[entity.Product]
	employees domaingw.Gateway[entity.Employee]
	receipts  domaingw.Gateway[entity.Receipt]
}

func buildGateways(cfg *config.Config) (*gateways, error) {
	switch cfg.Gateway.Driver {
	case "rest":
		return &gateways{
			customers: infragw.NewRESTGateway[entity.Customer](cfg.Gateway.BaseURL, "customers", cfg.Gateway.APIKey, cfg.Gateway.Timeout),
			products:  infragw.NewRESTGateway[entity.Product](cfg.Gateway.BaseURL, "products", cfg.Gateway.APIKey, cfg.Gateway.Timeout),
			employees: infragw.NewRESTGateway[entity.Employee](cfg.Gateway.BaseURL, "employees", cfg.Gateway.APIKey, cfg.Gateway.Timeout),
			receipts:  infragw.NewRESTGateway[entity.Receipt](cfg.Gateway.BaseURL, "receipts", cfg.Gateway.APIKey, cfg.Gateway.Timeout),
		}, nil
	default:
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &gateways{
			customers: infragw.NewGormGateway[entity.Customer](db, "customer", cfg.Gateway.Timeout),
			products:  infragw.NewGormGateway[entity.Product](db, "product", cfg.Gateway.Timeout),
			employees: infragw.NewGormGateway[entity.Employee](db, "employee", cfg.Gateway.Timeout),
			receipts:  infragw.NewGormGateway[entity.Receipt](db, "receipt", cfg.Gateway.Timeout, "Items"),
		}, nil
	}
}
