package main

//
//  @title           benzak API
//  @version         1.0
//  @description     Fuel price tracking and aggregation service.
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @securityDefinitions.apikey TokenAuth
//  @in                         header
//  @name                       Authorization
//  @description                Static token, sent as "Token <value>"
//
//  @tag.name        reference
//  @tag.description Fuel and currency catalogs
//
//  @tag.name        price-history
//  @tag.description Price observation listing and recording
//
//  @tag.name        dynamics
//  @tag.description Aggregated per-date price reports
//
//  @tag.name        telegram
//  @tag.description Chat bot webhook

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benzak-dev/benzak-api/config"
	_ "github.com/benzak-dev/benzak-api/docs" // swagger docs
	"github.com/benzak-dev/benzak-api/internal/app"
	"github.com/benzak-dev/benzak-api/internal/logger"
	"github.com/benzak-dev/benzak-api/internal/seed"
)

// startServer starts the HTTP server in a goroutine and returns it so the
// caller can shut it down gracefully.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until SIGINT/SIGTERM, then drains the server and
// runs cleanup.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point.
//
// Modes (selected via --mode flag):
//   - seed: Creates the schema and loads the fuel/currency catalogs.
//   - api:  Starts the REST API and bot webhook.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: seed or api")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "seed":
		logger.L().Info().Msg("seeding reference data")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := seed.Run(ctx, db); err != nil {
			logger.L().Fatal().Err(err).Msg("seeding failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
