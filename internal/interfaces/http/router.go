package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/analytics"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/operations"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	ReceiptUC    *operations.ReceiptUseCase
	DeliveryUC   *operations.DeliveryUseCase
	TransferUC   *operations.TransferUseCase
	AdjustmentUC *operations.AdjustmentUseCase
	InventoryUC  *inventory.QueryUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Solo admin y manager pueden mutar el catálogo y completar operaciones.
	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", managers, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Deactivate)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", managers, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", managers, categoryHandler.Update)
	categories.Delete("/:id", managers, categoryHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", managers, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", managers, warehouseHandler.Update)
	warehouses.Delete("/:id", managers, warehouseHandler.Delete)

	// Receipts (protegido)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Put("/:id", receiptHandler.Update)
	receipts.Post("/:id/cancel", receiptHandler.Cancel)
	receipts.Post("/:id/lines", receiptHandler.AddLine)
	receipts.Put("/lines/:line_id", receiptHandler.UpdateLine)
	receipts.Delete("/lines/:line_id", receiptHandler.DeleteLine)
	receipts.Post("/:id/receive", receiptHandler.Receive)

	// Deliveries (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Put("/:id", deliveryHandler.Update)
	deliveries.Post("/:id/cancel", deliveryHandler.Cancel)
	deliveries.Post("/:id/lines", deliveryHandler.AddLine)
	deliveries.Put("/lines/:line_id", deliveryHandler.UpdateLine)
	deliveries.Delete("/lines/:line_id", deliveryHandler.DeleteLine)
	deliveries.Post("/:id/ship", deliveryHandler.Ship)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Post("/:id/cancel", transferHandler.Cancel)
	transfers.Post("/:id/lines", transferHandler.AddLine)
	transfers.Put("/lines/:line_id", transferHandler.UpdateLine)
	transfers.Delete("/lines/:line_id", transferHandler.DeleteLine)
	transfers.Post("/:id/complete", transferHandler.Complete)

	// Adjustments (protegido; aplicar solo admin/manager)
	adjustments := protected.Group("/adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Get("/:id", adjustmentHandler.GetByID)
	adjustments.Put("/:id", adjustmentHandler.Update)
	adjustments.Post("/:id/cancel", adjustmentHandler.Cancel)
	adjustments.Post("/:id/lines", adjustmentHandler.AddLine)
	adjustments.Put("/lines/:line_id", adjustmentHandler.UpdateLine)
	adjustments.Delete("/lines/:line_id", adjustmentHandler.DeleteLine)
	adjustments.Post("/:id/apply", managers, adjustmentHandler.Apply)

	// Inventory: balances y ledger (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/balances", inventoryHandler.ListBalances)
	invGroup.Get("/balances/export", inventoryHandler.ExportBalances)
	invGroup.Get("/ledger", inventoryHandler.ListLedger)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
}
