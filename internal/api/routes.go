package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health, readiness, and metrics
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		speakers := v1.Group("/speakers")
		{
			speakers.GET("", handler.ListSpeakers)   // GET /api/v1/speakers
			speakers.GET("/:id", handler.GetSpeaker) // GET /api/v1/speakers/:id
		}

		v1.GET("/facets", handler.GetFacets) // GET /api/v1/facets
		v1.GET("/stats", handler.GetStats)   // GET /api/v1/stats
	}
}
