package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmudassir/expert-finder/internal/config"
	"github.com/itsmudassir/expert-finder/internal/logging"
)

// NewServer builds the HTTP server around a gin engine with the API routes
// mounted and the configured timeouts applied.
func NewServer(handler *Handler, cfg config.ServerConfig, logger logging.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	SetupRoutes(router, handler)

	return &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug("request",
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
		)
	}
}
