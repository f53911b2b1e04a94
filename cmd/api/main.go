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

	_ "github.com/jortega/comercio-api/docs"
	"github.com/jortega/comercio-api/internal/application/auth"
	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/infrastructure/media"
	infrapdf "github.com/jortega/comercio-api/internal/infrastructure/pdf"
	"github.com/jortega/comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jortega/comercio-api/internal/interfaces/http"
	"github.com/jortega/comercio-api/pkg/config"
	"github.com/jortega/comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	businessRepo := postgres.NewBusinessRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGenerator := infrapdf.NewReceiptGenerator()
	uploader := media.NewUploader(cfg.Cloudinary)

	authUC := auth.NewAuthUseCase(userRepo, businessRepo, employeeRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	transactionUC := usecase.NewTransactionUseCase(txRunner, transactionRepo, businessRepo, receiptGenerator)
	reportUC := usecase.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		BusinessUC:    businessUC,
		EmployeeUC:    employeeUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		CustomerUC:    customerUC,
		TransactionUC: transactionUC,
		ReportUC:      reportUC,
		Uploader:      uploader,
		JWTSecret:     cfg.JWT.Secret,
		Session:       cfg.Session,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
