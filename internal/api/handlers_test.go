package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/logging"
	"github.com/itsmudassir/expert-finder/internal/storage"
)

// mockStore implements Store for testing.
type mockStore struct {
	lastQuery storage.Query
	speakers  []domain.Profile
	total     int64
	profile   *domain.Profile
	facets    *storage.Facets
	stats     *storage.Stats
	pingErr   error
	err       error
}

func (m *mockStore) Search(_ context.Context, q storage.Query) ([]domain.Profile, int64, error) {
	m.lastQuery = q
	return m.speakers, m.total, m.err
}

func (m *mockStore) Get(_ context.Context, unifiedID string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profile == nil || m.profile.UnifiedID != unifiedID {
		return nil, storage.ErrNotFound
	}
	return m.profile, nil
}

func (m *mockStore) Facets(_ context.Context) (*storage.Facets, error) {
	return m.facets, m.err
}

func (m *mockStore) Stats(_ context.Context) (*storage.Stats, error) {
	return m.stats, m.err
}

func (m *mockStore) Ping(_ context.Context) error { return m.pingErr }

func setupRouter(store *mockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(store, logging.NewNop(), "test")
	SetupRoutes(router, handler)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListSpeakers(t *testing.T) {
	store := &mockStore{
		speakers: []domain.Profile{
			{UnifiedID: "abc", BasicInfo: domain.BasicInfo{FullName: "Jane Smith"}},
		},
		total: 1,
	}
	router := setupRouter(store)

	w := doRequest(t, router, "/api/v1/speakers")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SpeakersListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Speakers, 1)
	assert.Equal(t, "Jane Smith", resp.Speakers[0].BasicInfo.FullName)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PerPage)
}

func TestListSpeakers_FiltersForwarded(t *testing.T) {
	store := &mockStore{}
	router := setupRouter(store)

	w := doRequest(t, router,
		"/api/v1/speakers?q=ai&category=technology&country=Canada&dei=true"+
			"&min_score=60&sort=rating&page=3&page_size=50&fee_bucket=10000_20000")
	require.Equal(t, http.StatusOK, w.Code)

	q := store.lastQuery
	assert.Equal(t, "ai", q.Text)
	assert.Equal(t, "technology", q.Category)
	assert.Equal(t, "Canada", q.Country)
	assert.True(t, q.DEIOnly)
	assert.Equal(t, 60, q.MinProfileScore)
	assert.Equal(t, "rating", q.Sort)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 50, q.PageSize)
	assert.Equal(t, "10000_20000", q.FeeBucket)
}

func TestListSpeakers_BadParamsIgnored(t *testing.T) {
	store := &mockStore{}
	router := setupRouter(store)

	w := doRequest(t, router, "/api/v1/speakers?page=junk&min_score=-5&page_size=9999")
	require.Equal(t, http.StatusOK, w.Code)

	q := store.lastQuery
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 0, q.MinProfileScore)
	assert.Equal(t, 20, q.PageSize)
}

func TestListSpeakers_SearchError(t *testing.T) {
	store := &mockStore{err: errors.New("mongo down")}
	router := setupRouter(store)

	w := doRequest(t, router, "/api/v1/speakers")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSpeaker(t *testing.T) {
	store := &mockStore{
		profile: &domain.Profile{
			UnifiedID: "abc",
			BasicInfo: domain.BasicInfo{FullName: "Jane Smith"},
		},
	}
	router := setupRouter(store)

	w := doRequest(t, router, "/api/v1/speakers/abc")
	require.Equal(t, http.StatusOK, w.Code)

	var p domain.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Jane Smith", p.BasicInfo.FullName)
}

func TestGetSpeaker_NotFound(t *testing.T) {
	store := &mockStore{}
	router := setupRouter(store)

	w := doRequest(t, router, "/api/v1/speakers/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFacets(t *testing.T) {
	store := &mockStore{
		facets: &storage.Facets{
			Categories: []storage.FacetBucket{{Value: "technology", Count: 42}},
		},
	}
	router := setupRouter(store)

	w := doRequest(t, router, "/api/v1/facets")
	require.Equal(t, http.StatusOK, w.Code)

	var facets storage.Facets
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &facets))
	require.Len(t, facets.Categories, 1)
	assert.Equal(t, "technology", facets.Categories[0].Value)
	assert.Equal(t, 42, facets.Categories[0].Count)
}

func TestGetStats(t *testing.T) {
	store := &mockStore{
		stats: &storage.Stats{
			TotalProfiles:   120,
			AvgProfileScore: 61.5,
		},
	}
	router := setupRouter(store)

	w := doRequest(t, router, "/api/v1/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var stats storage.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(120), stats.TotalProfiles)
	assert.InDelta(t, 61.5, stats.AvgProfileScore, 0.001)
}

func TestHealthAndReady(t *testing.T) {
	store := &mockStore{}
	router := setupRouter(store)

	assert.Equal(t, http.StatusOK, doRequest(t, router, "/health").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, router, "/ready").Code)

	store.pingErr = errors.New("no reachable servers")
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(t, router, "/ready").Code)
}
