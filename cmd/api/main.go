package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/frankUCLA/modasoft/internal/application/auth"
	"github.com/frankUCLA/modasoft/internal/application/catalog"
	"github.com/frankUCLA/modasoft/internal/application/rates"
	"github.com/frankUCLA/modasoft/internal/application/sales"
	infrapdf "github.com/frankUCLA/modasoft/internal/infrastructure/pdf"
	"github.com/frankUCLA/modasoft/internal/infrastructure/postgres"
	infraredis "github.com/frankUCLA/modasoft/internal/infrastructure/redis"
	httpRouter "github.com/frankUCLA/modasoft/internal/interfaces/http"
	"github.com/frankUCLA/modasoft/pkg/config"
	"github.com/frankUCLA/modasoft/pkg/logger"
	"github.com/frankUCLA/modasoft/pkg/session"
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

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions, err := session.NewManager(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTLMinutes)
	if err != nil {
		log.Fatal().Err(err).Msg("sesión")
	}

	// Cache de tasa en Redis: opcional. Sin REDIS_ADDR el servicio responde
	// con el valor de respaldo igual.
	var rateCache rates.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, tasa sin cache")
		} else {
			defer redisClient.Close()
			rateCache = infraredis.NewRateCache(redisClient, cfg.BCV.TTLMinutes)
		}
	}

	authUC := auth.NewUseCase(userRepo)
	catalogUC := catalog.NewUseCase(categoryRepo, supplierRepo, sizeRepo, productRepo, txRunner)
	salesUC := sales.NewUseCase(txRunner, clientRepo, saleRepo, productRepo, sizeRepo)
	rateSvc := rates.NewService(rateCache, cfg.BCV.FallbackRate)
	receipts := infrapdf.NewReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Frontend estático (paneles de admin y caja)
	app.Static("/", "./public")

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		SalesUC:    salesUC,
		RateSvc:    rateSvc,
		Sessions:   sessions,
		CookieName: cfg.Session.CookieName,
		DB:         pool,
		Receipts:   receipts,
		Log:        log,
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
