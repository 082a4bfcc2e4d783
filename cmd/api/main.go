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

	"github.com/jhoicas/commodities-api/internal/application/analytics"
	"github.com/jhoicas/commodities-api/internal/application/auth"
	"github.com/jhoicas/commodities-api/internal/application/usecase"
	"github.com/jhoicas/commodities-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/commodities-api/internal/interfaces/http"
	"github.com/jhoicas/commodities-api/pkg/config"
	"github.com/jhoicas/commodities-api/pkg/logger"
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
		Bool("mock_latency", cfg.Mock.Latency).
		Msg("iniciando aplicación")

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		if cfg.App.Env != "development" {
			log.Fatal().Msg("JWT_SECRET es obligatorio fuera de development")
		}
		log.Warn().Msg("JWT_SECRET vacío, usando secret de desarrollo")
		jwtSecret = "commodities-dev-secret"
	}

	// Almacén en memoria: sistema de registro del mock. El Clock inyectado
	// decide si las operaciones simulan latencia de red o responden al instante.
	clock := memory.InstantClock()
	if cfg.Mock.Latency {
		clock = memory.SystemClock()
	}
	productRepo := memory.NewProductRepository(clock, memory.SeedProducts(clock.Now()))
	userRepo := memory.NewUserRepository(clock, memory.SeedUsers())
	log.Info().Msg("almacén en memoria inicializado con datos de demostración")

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     jwtSecret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo)

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
		Title:    "Commodities API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		JWTSecret:   jwtSecret,
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
