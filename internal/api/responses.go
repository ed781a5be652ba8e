package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/storage"
)

// SpeakersListResponse is one page of search results.
type SpeakersListResponse struct {
	Speakers []domain.Profile `json:"speakers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
}

// parseQuery maps the request's query string onto a storage query. Unknown
// or malformed values fall back to their zero value rather than erroring.
func parseQuery(c *gin.Context) storage.Query {
	q := storage.Query{
		Text:           c.Query("q"),
		Category:       c.Query("category"),
		ParentCategory: c.Query("parent_category"),
		Industry:       c.Query("industry"),
		Country:        c.Query("country"),
		City:           c.Query("city"),
		Language:       c.Query("language"),
		Format:         c.Query("format"),
		Audience:       c.Query("audience"),
		FeeBucket:      c.Query("fee_bucket"),
		Sort:           c.Query("sort"),
		Page:           1,
		PageSize:       20,
	}

	if c.Query("dei") == "true" {
		q.DEIOnly = true
	}
	if v, err := strconv.Atoi(c.Query("min_score")); err == nil && v > 0 {
		q.MinProfileScore = v
	}
	if v, err := strconv.Atoi(c.Query("min_experience")); err == nil && v > 0 {
		q.MinExperienceScore = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= 100 {
		q.PageSize = v
	}
	return q
}
