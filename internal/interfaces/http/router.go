package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/comercio-api/internal/application/auth"
	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/infrastructure/media"
	"github.com/jortega/comercio-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	BusinessUC    *usecase.BusinessUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	CustomerUC    *usecase.CustomerUseCase
	TransactionUC *usecase.TransactionUseCase
	ReportUC      *usecase.ReportUseCase
	Uploader      *media.Uploader
	JWTSecret     string
	Session       config.SessionConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protect := AuthMiddleware(deps.JWTSecret, deps.Session.CookieName)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/check", protect, authHandler.Check)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := api.Group("/", protect)

	// Negocio activo
	business := protected.Group("/business")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	business.Get("/", businessHandler.Get)
	business.Get("/mine", businessHandler.ListMine)
	business.Put("/", RequireRole(entity.RoleOwner, entity.RoleManager), businessHandler.Update)
	business.Delete("/", RequireRole(entity.RoleOwner), businessHandler.Deactivate)

	// Empleados (solo propietario y gerente)
	employees := protected.Group("/employees", RequireRole(entity.RoleOwner, entity.RoleManager))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/stock", productHandler.AdjustStock)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Transacciones del POS
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.CreateSale)
	transactions.Post("/refunds", transactionHandler.CreateRefund)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Get("/:id/receipt", transactionHandler.Receipt)
	transactions.Post("/:id/void", RequireRole(entity.RoleOwner, entity.RoleManager), transactionHandler.Void)

	// Uploads
	uploads := protected.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.Uploader)
	uploads.Post("/", uploadHandler.Upload)
	uploads.Delete("/*", uploadHandler.Delete)

	// Reportes (solo propietario y gerente)
	reports := protected.Group("/reports", RequireRole(entity.RoleOwner, entity.RoleManager))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/low-stock", reportHandler.LowStock)
}
