package main

import (
	"context"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/avelarde/avance/internal/api"
	"github.com/avelarde/avance/internal/config"
	"github.com/avelarde/avance/internal/services"
	"github.com/avelarde/avance/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	storage := store.Connect(store.Options{
		SQLServerDSN: cfg.SQLServerDSN(),
		MaxOpenConns: cfg.SQLServerPoolSize,
		SQLitePath:   cfg.SQLitePath,
		WorkbookPath: cfg.WorkbookPath,
	})
	defer storage.Close()

	gateway := store.NewGateway(storage, cfg.CacheTTL)

	setup := services.NewSetupService(gateway)
	generated, err := setup.EnsureAdministrator(cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("administrator bootstrap failed: %v", err)
	}
	if generated != "" {
		// Printed once, on first start against an empty database.
		log.Printf("created administrator %s with password %s", cfg.AdminEmail, generated)
	}

	handler, err := api.NewHandler(gateway, cfg.SecretKey, filepath.Join("internal", "templates"), cfg.SessionTTL, cfg.CookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Avance",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "avance_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cfg.CookieSecure,
		ContextKey:     "csrf",
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Avance listening on http://0.0.0.0:%s (backend: %s)", cfg.Port, storage.Kind())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
