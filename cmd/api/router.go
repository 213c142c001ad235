package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booklisting-backend/internal/shared/middleware"
	"booklisting-backend/internal/shared/response"
	"booklisting-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Not Found")
	})

	router.GET("/health", healthCheckHandler(c))
	c.ListingHandler.RegisterRoutes(router)

	return router
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.Store.Ping(pingCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"store":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
			"store":   c.Config.Store.Driver,
		})
	}
}
