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

	"github.com/jhoicas/invorder-api/internal/application/auth"
	"github.com/jhoicas/invorder-api/internal/application/usecase"
	"github.com/jhoicas/invorder-api/internal/infrastructure/postgres"
	apphttp "github.com/jhoicas/invorder-api/internal/interfaces/http"
	"github.com/jhoicas/invorder-api/pkg/config"
	"github.com/jhoicas/invorder-api/pkg/logger"
)

// @title           Inv-Order API
// @version         1.0
// @description     API de inventario y pedidos: autenticación por cookie de sesión firmada, control de acceso por rol y catálogo de items.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conectar a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.SessionConfig{
		Secret:  cfg.Session.Secret,
		ExpDays: cfg.Session.ExpDays,
	})
	itemUC := usecase.NewItemUseCase(itemRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inv-Order API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		ItemUC:        itemUC,
		SessionSecret: cfg.Session.Secret,
	})

	go func() {
		addr := cfg.HTTP.Addr()
		log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
