package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	_ "github.com/salesdesk/sales-management-be/docs"
	"github.com/salesdesk/sales-management-be/internal/config"
	"github.com/salesdesk/sales-management-be/internal/database"
	"github.com/salesdesk/sales-management-be/internal/handlers"
	"github.com/salesdesk/sales-management-be/internal/repositories"
	"github.com/salesdesk/sales-management-be/internal/services"
	"github.com/salesdesk/sales-management-be/internal/utils"
)

// @title Sales Management API
// @version 1.0
// @description REST API for sales records: filtered listing, summary, filter options and record creation
// @host localhost:3001
// @BasePath /
func main() {
	utils.InitLogger()

	cfg := config.LoadConfig()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.DBBackend).Msg("🚀 starting sales-api")

	var store repositories.RecordStore
	if cfg.DBBackend == "memory" {
		store = repositories.NewMemoryStore()
		log.Warn().Msg("using in-memory store, data will not survive a restart")
	} else {
		db, err := database.NewDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ failed to connect to database")
		}
		store = repositories.NewSQLStore(db)
		log.Info().Msg("✅ database connected")
	}

	salesService := services.NewSalesService(store)
	catalogService := services.NewCatalogService()

	salesHandler := handlers.NewSalesHandler(salesService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	app := fiber.New(fiber.Config{
		AppName: "Sales Management API",
	})

	app.Use(cors.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "sales-api",
		})
	})

	// Sales routes
	app.Get("/api/sales", salesHandler.GetSales)
	app.Get("/api/sales/summary", salesHandler.GetSummary)
	app.Get("/api/sales/filters", salesHandler.GetFilterOptions)
	app.Get("/api/sales/:id", salesHandler.GetSale)
	app.Post("/api/sales", salesHandler.CreateSale)

	// Customer and product stubs
	app.Post("/api/customers", catalogHandler.CreateCustomer)
	app.Get("/api/products", catalogHandler.GetProducts)
	app.Post("/api/products", catalogHandler.CreateProduct)

	log.Info().Msgf("✅ sales-api running at :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
