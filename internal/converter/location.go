package converter

import (
	dto "civic_backend/internal/api/dto/location"
	"civic_backend/internal/model"
)

func ToStateInfos(states []model.StateInfo) []dto.StateInfo {
	result := make([]dto.StateInfo, len(states))
	for i, s := range states {
		result[i] = dto.StateInfo{
			Name:      s.Name,
			Districts: s.Districts,
		}
	}
	return result
}

func ToStatsResponse(stats *model.LocationStats) dto.StatsResponse {
	topCategories := make([]dto.CategoryCount, len(stats.TopCategories))
	for i, c := range stats.TopCategories {
		topCategories[i] = dto.CategoryCount{
			Category: c.Category,
			Count:    c.Count,
		}
	}

	return dto.StatsResponse{
		State:          stats.State,
		District:       stats.District,
		LocalBody:      stats.LocalBody,
		TotalIssues:    stats.TotalIssues,
		ResolvedIssues: stats.ResolvedIssues,
		PendingIssues:  stats.PendingIssues,
		CriticalIssues: stats.CriticalIssues,
		ResolutionRate: stats.ResolutionRate,
		TopCategories:  topCategories,
	}
}

func ToTrendingLocations(locations []model.TrendingLocation) []dto.TrendingLocation {
	result := make([]dto.TrendingLocation, len(locations))
	for i, l := range locations {
		result[i] = dto.TrendingLocation{
			State:      l.State,
			District:   l.District,
			IssueCount: l.IssueCount,
			TotalVotes: l.TotalVotes,
		}
	}
	return result
}
