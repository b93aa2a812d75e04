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
	"github.com/jhoicas/FotoStock-api/internal/application/auth"
	"github.com/jhoicas/FotoStock-api/internal/application/catalog"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/FotoStock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/FotoStock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/FotoStock-api/internal/interfaces/http"
	"github.com/jhoicas/FotoStock-api/pkg/config"
	"github.com/jhoicas/FotoStock-api/pkg/logger"
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

	profileRepo := postgres.NewProfileRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(profileRepo, storeRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	storeUC := usecase.NewStoreUseCase(storeRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo)
	planUC := usecase.NewPlanUseCase(storeRepo)
	teamUC := usecase.NewTeamUseCase(profileRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, storeRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	adminUC := usecase.NewAdminUseCase(analyticsRepo, profileRepo)

	// Catálogo público + exportación PDF
	pdfGenerator := infrapdf.NewMarotoCatalogGenerator()
	catalogUC := catalog.NewCatalogUseCase(storeRepo, productRepo, pdfGenerator)

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
		Title:    "FotoStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		StoreUC:        storeUC,
		ProductUC:      productUC,
		SaleUC:         saleUC,
		PlanUC:         planUC,
		TeamUC:         teamUC,
		DashboardUC:    dashboardUC,
		NotificationUC: notificationUC,
		AdminUC:        adminUC,
		CatalogUC:      catalogUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	// Apagado ordenado: SIGINT/SIGTERM cierran el servidor drenando conexiones.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("señal recibida, apagando servidor")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("apagado del servidor")
		}
	}()

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
	log.Info().Msg("servidor detenido")
}
