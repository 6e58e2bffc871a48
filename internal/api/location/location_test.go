package location

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"civic_backend/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocationService struct {
	trendingLimit int
}

func (s *fakeLocationService) States() []model.StateInfo {
	return []model.StateInfo{{Name: "Kerala", Districts: []string{"Ernakulam"}}}
}

func (s *fakeLocationService) Districts(state string) []string {
	if state == "Kerala" {
		return []string{"Ernakulam", "Thrissur"}
	}
	return nil
}

func (s *fakeLocationService) LocalBodies(_ context.Context, _ string, _ string) ([]string, error) {
	return nil, nil
}

func (s *fakeLocationService) Stats(_ context.Context, state string, district string, localBody string) (*model.LocationStats, error) {
	return &model.LocationStats{State: state, District: district, LocalBody: localBody}, nil
}

func (s *fakeLocationService) Trending(_ context.Context, limit int) ([]model.TrendingLocation, error) {
	s.trendingLimit = limit
	return []model.TrendingLocation{}, nil
}

func newTestHandler() (*Handler, *fakeLocationService) {
	serv := &fakeLocationService{}
	return NewHandler(HandlerDeps{Serv: serv, Log: zerolog.Nop()}), serv
}

func TestStates(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.States(rec, httptest.NewRequest(http.MethodGet, "/v1/locations/states", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var parsed []struct {
		Name      string   `json:"name"`
		Districts []string `json:"districts"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "Kerala", parsed[0].Name)
}

func TestDistrictsRequiresState(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Districts(rec, httptest.NewRequest(http.MethodGet, "/v1/locations/districts", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDistrictsUnknownStateIsEmptyList(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Districts(rec, httptest.NewRequest(http.MethodGet, "/v1/locations/districts?state=Atlantis", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var parsed struct {
		State     string   `json:"state"`
		Districts []string `json:"districts"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parsed))
	assert.Equal(t, "Atlantis", parsed.State)
	assert.NotNil(t, parsed.Districts)
	assert.Empty(t, parsed.Districts)
}

func TestLocalBodiesRequiresStateAndDistrict(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.LocalBodies(rec, httptest.NewRequest(http.MethodGet, "/v1/locations/local-bodies?state=Kerala", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsRequiresState(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/v1/locations/stats", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/v1/locations/stats?state=Kerala&district=Ernakulam", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTrendingPassesLimit(t *testing.T) {
	h, serv := newTestHandler()

	rec := httptest.NewRecorder()
	h.Trending(rec, httptest.NewRequest(http.MethodGet, "/v1/locations/trending-locations?limit=25", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25, serv.trendingLimit)
}
