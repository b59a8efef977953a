package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/benzak-dev/benzak-api/config"
	"github.com/benzak-dev/benzak-api/internal/api"
	"github.com/benzak-dev/benzak-api/internal/bot"
	"github.com/benzak-dev/benzak-api/internal/service"
	"github.com/benzak-dev/benzak-api/internal/storage"
)

// InitializeApp sets up all application dependencies and returns the
// configured Gin router, a cleanup function for graceful shutdown, and any
// initialization error.
//
// Wiring order: Postgres connection, repository, dynamics and latest-price
// services, bot responder and Telegram client, HTTP handlers, router,
// health probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewPricesRepository(db)

	dynamics := service.NewDynamicsService(repo)
	latest := service.NewLatestService(repo, cfg.Report.Currency)

	responder := bot.NewResponder(latest)
	sender := bot.NewClient(cfg.Telegram.APIURL, cfg.Telegram.BotToken)

	handler := api.NewHandler(repo, dynamics)
	telegram := api.NewTelegramHandler(cfg.Telegram.BotToken, responder, sender)

	router := api.NewRouter(handler, telegram, cfg.Auth)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
