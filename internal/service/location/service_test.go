package location

import (
	"context"
	"testing"

	"civic_backend/internal/model"
	"civic_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocationRepo struct {
	localBodies []string
	counts      model.LocationCounts
	categories  []model.CategoryCount
	trending    []model.TrendingLocation

	trendingLimit uint64
}

func (r *fakeLocationRepo) ListLocalBodies(_ context.Context, _ string, _ string) ([]string, error) {
	return r.localBodies, nil
}

func (r *fakeLocationRepo) CountsByLocation(_ context.Context, _ string, _ string, _ string) (*model.LocationCounts, error) {
	counts := r.counts
	return &counts, nil
}

func (r *fakeLocationRepo) TopCategories(_ context.Context, _ string, _ string, _ string, _ uint64) ([]model.CategoryCount, error) {
	return r.categories, nil
}

func (r *fakeLocationRepo) TrendingLocations(_ context.Context, limit uint64) ([]model.TrendingLocation, error) {
	r.trendingLimit = limit
	if uint64(len(r.trending)) > limit {
		return r.trending[:limit], nil
	}
	return r.trending, nil
}

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func TestStatesCarryDistricts(t *testing.T) {
	s := NewService(&fakeLocationRepo{})

	states := s.States()
	require.NotEmpty(t, states)

	byName := make(map[string][]string, len(states))
	for _, state := range states {
		byName[state.Name] = state.Districts
	}
	assert.Contains(t, byName["Kerala"], "Ernakulam")
	assert.Contains(t, byName["Tamil Nadu"], "Chennai")
}

func TestDistricts(t *testing.T) {
	s := NewService(&fakeLocationRepo{})

	assert.Contains(t, s.Districts("Kerala"), "Thrissur")
	assert.Empty(t, s.Districts("Atlantis"))
}

func TestLocalBodies(t *testing.T) {
	s := NewService(&fakeLocationRepo{localBodies: []string{"Kochi Corporation", "Thrikkakara Municipality"}})

	localBodies, err := s.LocalBodies(context.Background(), "Kerala", "Ernakulam")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kochi Corporation", "Thrikkakara Municipality"}, localBodies)
}

func TestStatsComputesResolutionRate(t *testing.T) {
	s := NewService(&fakeLocationRepo{
		counts: model.LocationCounts{Total: 3, Resolved: 1, Pending: 2, Critical: 1},
		categories: []model.CategoryCount{
			{Category: "infrastructure", Count: 2},
			{Category: "sanitation", Count: 1},
		},
	})

	stats, err := s.Stats(context.Background(), "Kerala", "Ernakulam", "")
	require.NoError(t, err)

	assert.Equal(t, "Kerala", stats.State)
	assert.Equal(t, "Ernakulam", stats.District)
	assert.Equal(t, 3, stats.TotalIssues)
	assert.Equal(t, 1, stats.ResolvedIssues)
	assert.Equal(t, 2, stats.PendingIssues)
	assert.Equal(t, 1, stats.CriticalIssues)
	// 1/3 resolved, as a percentage rounded to two decimals.
	assert.InDelta(t, 33.33, stats.ResolutionRate, 0.001)
	assert.Len(t, stats.TopCategories, 2)
}

func TestStatsZeroIssues(t *testing.T) {
	s := NewService(&fakeLocationRepo{})

	stats, err := s.Stats(context.Background(), "Kerala", "", "")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalIssues)
	assert.Zero(t, stats.ResolutionRate)
}

func TestTrendingClampsLimit(t *testing.T) {
	repo := &fakeLocationRepo{
		trending: []model.TrendingLocation{
			{State: "Kerala", District: "Ernakulam", IssueCount: 12, TotalVotes: 40},
			{State: "Kerala", District: "Thrissur", IssueCount: 7, TotalVotes: 15},
		},
	}
	s := NewService(repo)
	ctx := context.Background()

	locations, err := s.Trending(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), repo.trendingLimit)
	assert.Len(t, locations, 2)

	_, err = s.Trending(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), repo.trendingLimit)

	locations, err = s.Trending(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), repo.trendingLimit)
	assert.Len(t, locations, 1)
	assert.Equal(t, "Ernakulam", locations[0].District)
}
