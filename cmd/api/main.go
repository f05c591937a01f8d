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

	"github.com/jhoicas/Thahab-api/internal/application/analytics"
	"github.com/jhoicas/Thahab-api/internal/application/auth"
	"github.com/jhoicas/Thahab-api/internal/application/backup"
	"github.com/jhoicas/Thahab-api/internal/application/billing"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/application/usecase"
	infraai "github.com/jhoicas/Thahab-api/internal/infrastructure/ai"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/credentials"
	infrapdf "github.com/jhoicas/Thahab-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Thahab-api/internal/interfaces/http"
	"github.com/jhoicas/Thahab-api/pkg/config"
	"github.com/jhoicas/Thahab-api/pkg/logger"
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

	kv, err := openKV(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacén de estado")
	}
	defer kv.Close()
	log.Info().Str("driver", cfg.Storage.Driver).Msg("almacén de estado abierto")

	st := store.New(ctx, kv, log)

	productUC := usecase.NewProductUseCase(st)
	customerUC := usecase.NewCustomerUseCase(st)
	supplierUC := usecase.NewSupplierUseCase(st)
	saleUC := usecase.NewSaleUseCase(st)
	goldPriceUC := usecase.NewGoldPriceUseCase(st)
	dashboardUC := analytics.NewDashboardUseCase(st)
	backupUC := backup.NewUseCase(kv)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	advisorUC := usecase.NewAdvisorUseCase(geminiSvc, st, log)

	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := billing.NewReceiptUseCase(st, pdfGenerator, log)

	verifier := credentials.NewStaticVerifier(cfg.Auth)
	authUC := auth.NewUseCase(verifier, st, log, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Thahab API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		SaleUC:      saleUC,
		GoldPriceUC: goldPriceUC,
		AdvisorUC:   advisorUC,
		DashboardUC: dashboardUC,
		ReceiptUC:   receiptUC,
		BackupUC:    backupUC,
		JWTSecret:   cfg.JWT.Secret,
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

// openKV abre el almacén clave-valor según el driver configurado.
func openKV(ctx context.Context, cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewKVRepository(ctx, pool)
	case "memory":
		return storage.NewMemoryKV(), nil
	default: // "stoolap"
		return storage.NewStoolapKV(ctx, cfg.Path)
	}
}
