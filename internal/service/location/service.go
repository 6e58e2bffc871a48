package location

import (
	"context"
	"math"

	"civic_backend/internal/model"
	"civic_backend/internal/repository"
	"civic_backend/internal/service"
)

const (
	topCategoriesLimit  = 5
	defaultTrendingSize = 10
	maxTrendingSize     = 50
)

type serv struct {
	locationRepo repository.LocationRepository
}

func NewService(locationRepo repository.LocationRepository) service.LocationService {
	return &serv{
		locationRepo: locationRepo,
	}
}

// States - the static state/district reference table.
func (s *serv) States() []model.StateInfo {
	states := make([]model.StateInfo, len(stateNames))
	for i, name := range stateNames {
		states[i] = model.StateInfo{
			Name:      name,
			Districts: districtsByState[name],
		}
	}
	return states
}

// Districts - districts for one state; empty for an unknown state.
func (s *serv) Districts(state string) []string {
	return districtsByState[state]
}

// LocalBodies - local bodies seen in reported issues for a district.
func (s *serv) LocalBodies(ctx context.Context, state string, district string) ([]string, error) {
	return s.locationRepo.ListLocalBodies(ctx, state, district)
}

// Stats - aggregated issue statistics for a location slice. The resolution
// rate is a percentage rounded to two decimals; zero issues means zero rate.
func (s *serv) Stats(ctx context.Context, state string, district string, localBody string) (*model.LocationStats, error) {
	counts, err := s.locationRepo.CountsByLocation(ctx, state, district, localBody)
	if err != nil {
		return nil, err
	}

	topCategories, err := s.locationRepo.TopCategories(ctx, state, district, localBody, topCategoriesLimit)
	if err != nil {
		return nil, err
	}

	resolutionRate := 0.0
	if counts.Total > 0 {
		resolutionRate = math.Round(float64(counts.Resolved)/float64(counts.Total)*100*100) / 100
	}

	return &model.LocationStats{
		State:          state,
		District:       district,
		LocalBody:      localBody,
		TotalIssues:    counts.Total,
		ResolvedIssues: counts.Resolved,
		PendingIssues:  counts.Pending,
		CriticalIssues: counts.Critical,
		ResolutionRate: resolutionRate,
		TopCategories:  topCategories,
	}, nil
}

// Trending - state/district pairs with the most reported issues. The limit
// is clamped to [1, 50] with a default of 10.
func (s *serv) Trending(ctx context.Context, limit int) ([]model.TrendingLocation, error) {
	if limit <= 0 {
		limit = defaultTrendingSize
	}
	if limit > maxTrendingSize {
		limit = maxTrendingSize
	}

	return s.locationRepo.TrendingLocations(ctx, uint64(limit))
}
