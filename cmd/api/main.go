package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jackel7/stock-mate/internal/application/ledger"
	"github.com/jackel7/stock-mate/internal/application/reports"
	"github.com/jackel7/stock-mate/internal/application/usecase"
	"github.com/jackel7/stock-mate/internal/infrastructure/postgres"
	httpRouter "github.com/jackel7/stock-mate/internal/interfaces/http"
	"github.com/jackel7/stock-mate/pkg/config"
	"github.com/jackel7/stock-mate/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	submitUC := ledger.NewSubmitTransactionUseCase(txRunner, cfg.Ledger, log)
	transactionQueryUC := usecase.NewTransactionQueryUseCase(transactionRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, productRepo)
	reportsUC := reports.NewReportsUseCase(movementRepo, alertRepo)
	dashboardUC := reports.NewDashboardUseCase(dashboardRepo, transactionRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "stock-mate API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SubmitTransaction: submitUC,
		TransactionQuery:  transactionQueryUC,
		ProductUC:         productUC,
		CategoryUC:        categoryUC,
		VendorUC:          vendorUC,
		ReportsUC:         reportsUC,
		DashboardUC:       dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
