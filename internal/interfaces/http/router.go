package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-core/internal/application/auth"
	"github.com/tu-usuario/inventario-core/internal/application/inventory"
	"github.com/tu-usuario/inventario-core/internal/application/reports"
	"github.com/tu-usuario/inventario-core/internal/application/usecase"
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *reports.ReportUseCase
	AuthUC           *auth.AuthUseCase
	Validator        *validator.Validator
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; escrituras solo admin y bodeguero)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Validator)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Inventory movements (protegido; registrar solo admin y bodeguero)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Validator)
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.RegisterMovement)

	// Reports (protegido, solo lectura)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Validator)
	reportsGroup.Get("/movements", reportHandler.ListMovements)
}
