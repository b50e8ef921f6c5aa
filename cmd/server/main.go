// main.go
//
// Boerd: collect and organize mixed-media content on boards
// Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)
//
// This file is part of boerd.
// boerd is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boerd is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boerd.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)"
//    in this material, copies, or source code of derived works.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/handlers"
	"github.com/dhiyaancnirmal/boerd/internal/logging"
	"github.com/dhiyaancnirmal/boerd/internal/metadata"
	"github.com/dhiyaancnirmal/boerd/internal/middleware"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	_ "github.com/dhiyaancnirmal/boerd/docs/api" // Swagger docs
)

// multipart framing on top of the largest accepted file
const bodyLimitMargin = 1024 * 1024

// @title Boerd API
// @version 1.0.0
// @description Collect links, images, text and files as blocks, and arrange them on boards
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/dhiyaancnirmal/boerd

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logData, err := logging.New().
		FromPath(cfg.LogFile).
		WithLevel(cfg.LogLevel).
		WithFormat(cfg.LogFormat).
		Make()
	if err != nil {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Err(err).Msg("Failed to create logger")
	}

	// run returns instead of exiting so its deferred closes happen first
	err = run(cfg, logData.Logger)
	if err != nil {
		logData.Logger.Error().Err(err).Msg("Server failed")
	} else {
		logData.Logger.Info().Msg("Server stopped")
	}
	_ = logData.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	db, err := database.Connect(cfg, database.Options{
		LogLevel: logging.GormLevel(cfg.LogLevel),
		Log:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create storage adapter: %w", err)
	}

	fetcher := metadata.NewFetcher(cfg.FetchTimeout, log)
	ingestor := services.NewIngestor(db, store, fetcher, log)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		BodyLimit:             int(cfg.UploadMaxBytes) + bodyLimitMargin,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("boerd")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Local uploads are served straight from disk
	if local, ok := store.(*storage.Local); ok {
		app.Static(local.URLPrefix(), local.Root())
	}

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Config:   cfg,
		DB:       db,
		Storage:  store,
		Ingestor: ingestor,
	})

	// 404 handler
	app.Use(handlers.NotFound)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info().Msg("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DBType).
		Str("storage", cfg.StorageType).
		Msg("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
