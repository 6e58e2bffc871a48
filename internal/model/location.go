package model

// StateInfo - a state and its known districts. The state/district table is
// static reference data; local bodies come from reported issues.
type StateInfo struct {
	Name      string
	Districts []string
}

type CategoryCount struct {
	Category string
	Count    int
}

// LocationCounts - issue counts for one location slice.
type LocationCounts struct {
	Total    int
	Resolved int
	Pending  int
	Critical int
}

// LocationStats - aggregated issue statistics for a state, optionally
// narrowed to a district or local body.
type LocationStats struct {
	State          string
	District       string
	LocalBody      string
	TotalIssues    int
	ResolvedIssues int
	PendingIssues  int
	CriticalIssues int
	ResolutionRate float64
	TopCategories  []CategoryCount
}

// TrendingLocation - a state/district pair ranked by reported issues.
type TrendingLocation struct {
	State      string
	District   string
	IssueCount int
	TotalVotes int
}
