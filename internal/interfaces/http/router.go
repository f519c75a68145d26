package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jackel7/stock-mate/internal/application/ledger"
	"github.com/jackel7/stock-mate/internal/application/reports"
	"github.com/jackel7/stock-mate/internal/application/usecase"
)

// RouterDeps are the use cases the router wires to handlers.
type RouterDeps struct {
	SubmitTransaction *ledger.SubmitTransactionUseCase
	TransactionQuery  *usecase.TransactionQueryUseCase
	ProductUC         *usecase.ProductUseCase
	CategoryUC        *usecase.CategoryUseCase
	VendorUC          *usecase.VendorUseCase
	ReportsUC         *reports.ReportsUseCase
	DashboardUC       *reports.DashboardUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Transactions: submission goes through the ledger, reads are thin.
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.SubmitTransaction, deps.TransactionQuery)
	transactions.Post("/", transactionHandler.Submit)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetDetail)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportsUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/movements", productHandler.Movements)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Vendors
	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", vendorHandler.Create)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Reports + dashboard
	reportHandler := NewReportHandler(deps.ReportsUC, deps.DashboardUC)
	api.Get("/reports", reportHandler.Reports)
	api.Get("/dashboard", reportHandler.Dashboard)
}
