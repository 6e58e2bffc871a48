package location

type StateInfo struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

type DistrictsResponse struct {
	State     string   `json:"state"`
	Districts []string `json:"districts"`
}

type LocalBodiesResponse struct {
	State       string   `json:"state"`
	District    string   `json:"district"`
	LocalBodies []string `json:"local_bodies"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type StatsResponse struct {
	State          string          `json:"state"`
	District       string          `json:"district,omitempty"`
	LocalBody      string          `json:"local_body,omitempty"`
	TotalIssues    int             `json:"total_issues"`
	ResolvedIssues int             `json:"resolved_issues"`
	PendingIssues  int             `json:"pending_issues"`
	CriticalIssues int             `json:"critical_issues"`
	ResolutionRate float64         `json:"resolution_rate"`
	TopCategories  []CategoryCount `json:"top_categories"`
}

type TrendingLocation struct {
	State      string `json:"state"`
	District   string `json:"district"`
	IssueCount int    `json:"issue_count"`
	TotalVotes int    `json:"total_votes"`
}
