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
	"github.com/tu-usuario/inventario-core/internal/application/auth"
	"github.com/tu-usuario/inventario-core/internal/application/inventory"
	"github.com/tu-usuario/inventario-core/internal/application/reports"
	"github.com/tu-usuario/inventario-core/internal/application/usecase"
	"github.com/tu-usuario/inventario-core/internal/domain/repository"
	"github.com/tu-usuario/inventario-core/internal/infrastructure/memory"
	"github.com/tu-usuario/inventario-core/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-core/internal/interfaces/http"
	"github.com/tu-usuario/inventario-core/pkg/config"
	"github.com/tu-usuario/inventario-core/pkg/logger"
	"github.com/tu-usuario/inventario-core/pkg/validator"
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
		Str("backend", cfg.Data.Backend).
		Msg("iniciando aplicación")

	// Selección del backend de persistencia, una sola vez al cablear.
	var (
		productRepo  repository.ProductRepository
		movementRepo repository.StockMovementRepository
		userRepo     repository.UserRepository
		txRunner     inventory.TxRunner
	)
	switch cfg.Data.Backend {
	case config.BackendPostgres:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		movementRepo = postgres.NewStockMovementRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	case config.BackendFixture:
		log.Warn().Msg("backend fixture: datos demo en memoria, las escrituras no persisten")
		fixtureProducts := memory.NewFixtureProductRepository()
		fixtureMovements := memory.NewFixtureMovementRepository()
		productRepo = fixtureProducts
		movementRepo = fixtureMovements
		userRepo = memory.NewFixtureUserRepository()
		txRunner = memory.NewFixtureTxRunner(fixtureProducts, fixtureMovements)
	default:
		log.Fatal().Str("backend", cfg.Data.Backend).Msg("DATA_BACKEND desconocido")
	}

	subject := inventory.NewStockSubject()
	subject.Attach(inventory.NewLowStockAlertObserver(log))

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, subject, log)
	productUC := usecase.NewProductUseCase(productRepo)
	reportUC := reports.NewReportUseCase(movementRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		ReportUC:         reportUC,
		AuthUC:           authUC,
		Validator:        validator.New(),
		JWTSecret:        cfg.JWT.Secret,
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
