package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/autogestion/internal/application/workspace"
	infrapdf "github.com/jhoicas/autogestion/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/autogestion/internal/interfaces/http"
	"github.com/jhoicas/autogestion/pkg/config"
	"github.com/jhoicas/autogestion/pkg/logger"
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
		Str("api", cfg.API.BaseURL).
		Msg("iniciando panel")

	// Un espacio de trabajo por navegador; cada uno con su propia sesión en el backend.
	registry := workspace.NewRegistry(workspace.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, workspace.RegistryConfig{
		TTL:             cfg.Workspace.TTL,
		CleanupInterval: cfg.Workspace.CleanupInterval,
	}, log)

	pages, err := httpRouter.NewPagesHandler(cfg.App.Name, infrapdf.NewMarotoGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Registry:     registry,
		Pages:        pages,
		WorkspaceTTL: cfg.Workspace.TTL,
		CookieSecure: cfg.HTTP.CookieSecure,
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
	registry.Flush()

	log.Info().Msg("panel detenido")
}
