package issue

import "time"

type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Severity    string `json:"severity"` // low, medium, high, critical; defaults to medium
	State       string `json:"state"`
	District    string `json:"district"`
	LocalBody   string `json:"local_body"`
	Ward        string `json:"ward"`
}

// UpdateRequest - partial edit by the reporter; absent fields stay as-is.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Severity    *string `json:"severity"`
	Status      *string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type IssueResponse struct {
	ID          string    `json:"id"`
	ReporterID  string    `json:"reporter_id"`
	OrgID       string    `json:"org_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	State       string    `json:"state"`
	District    string    `json:"district"`
	LocalBody   string    `json:"local_body,omitempty"`
	Ward        string    `json:"ward,omitempty"`
	VoteCount   int       `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListResponse struct {
	Issues []IssueResponse `json:"issues"`
}
