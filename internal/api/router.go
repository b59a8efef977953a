package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/benzak-dev/benzak-api/config"
	"github.com/benzak-dev/benzak-api/internal/middleware"
)

// NewRouter creates a Gin engine with all routes configured.
//
// Route groups:
//   - /api/v1/currencies, /api/v1/fuels: public reference data.
//   - /api/v1/price-history: admin token, list + create.
//   - /api/v1/dynamics: api or admin token, aggregated reports.
//   - /api/v1/telegram: unauthenticated bot webhook.
//
// Health probes (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, telegram *TelegramHandler, auth config.AuthConfig) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// Per-request deadline
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/currencies", handler.ListCurrencies)
		v1.GET("/fuels", handler.ListFuels)

		history := v1.Group("/price-history", middleware.TokenAuth(auth.AdminToken))
		{
			history.GET("", handler.ListPriceHistory)
			history.POST("", handler.CreatePrice)
		}

		dynamics := v1.Group("/dynamics", middleware.TokenAuth(auth.APIToken, auth.AdminToken))
		{
			dynamics.GET("", handler.ListDynamics)
			dynamics.GET("/:at", handler.GetDynamics)
		}

		v1.POST("/telegram", telegram.Webhook)
	}

	return router
}
