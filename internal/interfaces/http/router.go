package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-control-api/internal/application/auth"
	"github.com/jhoicas/stock-control-api/internal/application/authz"
	"github.com/jhoicas/stock-control-api/internal/application/ledger"
	"github.com/jhoicas/stock-control-api/internal/application/reporting"
	"github.com/jhoicas/stock-control-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	ProductUC      *usecase.ProductUseCase
	RecordMovement *ledger.RecordMovementUseCase
	ReportUC       *reporting.ReportUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Toda ruta protegida pasa primero por
// AuthMiddleware y después por RequirePermission con su operación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; register es administrativo)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	protected.Post("/auth/register", RequirePermission(authz.OpRegisterUser), authHandler.Register)
	protected.Delete("/users/:id", RequirePermission(authz.OpDeactivateUser), authHandler.DeactivateUser)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", RequirePermission(authz.OpViewCategories), categoryHandler.List)
	categories.Get("/:id", RequirePermission(authz.OpViewCategories), categoryHandler.GetByID)
	categories.Post("/", RequirePermission(authz.OpCreateCategory), categoryHandler.Create)
	categories.Put("/:id", RequirePermission(authz.OpUpdateCategory), categoryHandler.Update)
	categories.Delete("/:id", RequirePermission(authz.OpDeactivateCategory), categoryHandler.Deactivate)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", RequirePermission(authz.OpViewSuppliers), supplierHandler.List)
	suppliers.Get("/:id", RequirePermission(authz.OpViewSuppliers), supplierHandler.GetByID)
	suppliers.Post("/", RequirePermission(authz.OpCreateSupplier), supplierHandler.Create)
	suppliers.Put("/:id", RequirePermission(authz.OpUpdateSupplier), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission(authz.OpDeactivateSupplier), supplierHandler.Deactivate)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission(authz.OpViewProducts), productHandler.List)
	products.Get("/low-stock", RequirePermission(authz.OpViewProducts), productHandler.LowStock)
	products.Get("/:id", RequirePermission(authz.OpViewProducts), productHandler.GetByID)
	products.Post("/", RequirePermission(authz.OpCreateProduct), productHandler.Create)
	products.Put("/:id", RequirePermission(authz.OpUpdateProduct), productHandler.Update)
	products.Delete("/:id", RequirePermission(authz.OpDeactivateProduct), productHandler.Deactivate)

	// Stock movements: solo creación y lectura, el ledger es inmutable.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.ReportUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	movements.Get("/", RequirePermission(authz.OpViewMovements), movementHandler.List)
	movements.Get("/report", RequirePermission(authz.OpViewReports), reportHandler.Movements)
	movements.Get("/:id", RequirePermission(authz.OpViewMovements), movementHandler.GetByID)
	movements.Post("/", RequirePermission(authz.OpCreateMovement), movementHandler.Record)

	// Dashboard
	protected.Get("/dashboard", RequirePermission(authz.OpViewDashboard), reportHandler.Dashboard)
}
