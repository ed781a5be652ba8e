// Package api exposes the unified speaker collection over HTTP: search with
// filters and paging, single-profile lookup, facet counts, and collection
// statistics.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/logging"
	"github.com/itsmudassir/expert-finder/internal/storage"
)

// Store is the read surface the handlers need from the storage layer.
type Store interface {
	Search(ctx context.Context, q storage.Query) ([]domain.Profile, int64, error)
	Get(ctx context.Context, unifiedID string) (*domain.Profile, error)
	Facets(ctx context.Context) (*storage.Facets, error)
	Stats(ctx context.Context) (*storage.Stats, error)
	Ping(ctx context.Context) error
}

// Handler handles HTTP requests for the speaker query API.
type Handler struct {
	store   Store
	logger  logging.Logger
	version string
}

// NewHandler creates a new API handler.
func NewHandler(store Store, logger logging.Logger, version string) *Handler {
	return &Handler{
		store:   store,
		logger:  logger,
		version: version,
	}
}

// ListSpeakers handles GET /api/v1/speakers.
func (h *Handler) ListSpeakers(c *gin.Context) {
	query := parseQuery(c)

	speakers, total, err := h.store.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("speaker search failed", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	h.logger.Debug("speakers listed",
		logging.Int("count", len(speakers)),
		logging.Int64("total", total),
	)

	c.JSON(http.StatusOK, SpeakersListResponse{
		Speakers: speakers,
		Total:    total,
		Page:     query.Page,
		PerPage:  query.PageSize,
	})
}

// GetSpeaker handles GET /api/v1/speakers/:id.
func (h *Handler) GetSpeaker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	speaker, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "speaker not found"})
		return
	}
	if err != nil {
		h.logger.Error("speaker lookup failed", logging.String("id", id), logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, speaker)
}

// GetFacets handles GET /api/v1/facets.
func (h *Handler) GetFacets(c *gin.Context) {
	facets, err := h.store.Facets(c.Request.Context())
	if err != nil {
		h.logger.Error("facet aggregation failed", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "facets unavailable"})
		return
	}

	c.JSON(http.StatusOK, facets)
}

// GetStats handles GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("stats aggregation failed", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats unavailable"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "expert-finder",
		"version": h.version,
	})
}

// ReadyCheck handles GET /ready. Ready means the database answers a ping.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"checks": gin.H{"mongodb": err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{"mongodb": "ok"},
	})
}
