package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/loader"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/usecase"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/datasource"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/metrics"
	infrapdf "github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/zuno10/Supply-Chain-Dashboard/internal/interfaces/http"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/config"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", datasource.Describe(cfg)).
		Msg("iniciando aplicación")

	ctx := context.Background()
	src, closeSource, err := datasource.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir fuente de datos")
	}
	defer closeSource()

	appMetrics := metrics.New()
	store := loader.NewStore(loader.New(src, log.Zerolog()))
	store.OnReload(appMetrics.ObserveSnapshot)

	// Sin snapshot inicial no hay nada que servir: la API arranca solo con datos válidos.
	snap, err := store.Reload(ctx)
	appMetrics.ObserveReload(err)
	if err != nil {
		log.Fatal().Err(err).Msg("carga inicial del snapshot")
	}
	log.Info().Str("snapshot_id", snap.ID()).Msg("snapshot inicial listo")

	dashboardUC := usecase.NewDashboardUseCase(store, infrapdf.NewMarotoSummaryGenerator(cfg.App.Name))
	snapshotUC := usecase.NewSnapshotUseCase(store, appMetrics)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: POST /api/snapshot/reload deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		SnapshotUC:  snapshotUC,
		Metrics:     appMetrics.Handler(),
		JWTSecret:   cfg.JWT.Secret,
		Log:         log.Component("http"),
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
