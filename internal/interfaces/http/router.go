package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Thahab-api/internal/application/analytics"
	"github.com/jhoicas/Thahab-api/internal/application/auth"
	"github.com/jhoicas/Thahab-api/internal/application/backup"
	"github.com/jhoicas/Thahab-api/internal/application/billing"
	"github.com/jhoicas/Thahab-api/internal/application/usecase"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	SaleUC      *usecase.SaleUseCase
	GoldPriceUC *usecase.GoldPriceUseCase
	AdvisorUC   *usecase.AdvisorUseCase
	DashboardUC *analytics.DashboardUseCase
	ReceiptUC   *billing.ReceiptUseCase
	BackupUC    *backup.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y sesión requieren token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Piezas del inventario
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Proveedores y suministros
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/transactions", supplierHandler.RegisterTransaction)
	suppliers.Get("/transactions", supplierHandler.ListTransactions)

	// Punto de venta
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales.Post("/", saleHandler.Checkout)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.DownloadReceipt)

	// Precios del oro (actualización solo admin)
	goldPrices := protected.Group("/gold-prices")
	goldPriceHandler := NewGoldPriceHandler(deps.GoldPriceUC)
	goldPrices.Get("/", goldPriceHandler.List)
	goldPrices.Put("/", adminOnly, goldPriceHandler.Update)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
	reports := protected.Group("/reports")
	reports.Get("/sales", dashboardHandler.SalesReport)
	reports.Get("/inventory", dashboardHandler.InventoryReport)

	// Asistente IA
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AdvisorUC)
	ai.Post("/describe-product", aiHandler.DescribeProduct)
	ai.Post("/analyze-sales", aiHandler.AnalyzeSales)

	// Respaldo (solo admin)
	backupHandler := NewBackupHandler(deps.BackupUC)
	protected.Get("/backup/export", adminOnly, backupHandler.Export)
}
