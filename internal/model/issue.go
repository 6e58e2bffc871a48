package model

import (
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	StatusReported     IssueStatus = "reported"
	StatusAcknowledged IssueStatus = "acknowledged"
	StatusInProgress   IssueStatus = "in_progress"
	StatusResolved     IssueStatus = "resolved"
	StatusRejected     IssueStatus = "rejected"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case StatusReported, StatusAcknowledged, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "low"
	SeverityMedium   IssueSeverity = "medium"
	SeverityHigh     IssueSeverity = "high"
	SeverityCritical IssueSeverity = "critical"
)

func (s IssueSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type Issue struct {
	ID          uuid.UUID
	ReporterID  uuid.UUID
	OrgID       uuid.UUID
	Title       string
	Description string
	Category    string
	Severity    IssueSeverity
	Status      IssueStatus
	State       string
	District    string
	LocalBody   string
	Ward        string
	VoteCount   int
	CreatedAt   time.Time
}

// IssueUpdate - partial update of an issue by its reporter. Nil fields are
// left untouched.
type IssueUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Severity    *IssueSeverity
	Status      *IssueStatus
}

type IssueFilter struct {
	State    string
	District string
	Status   IssueStatus
	Category string
	Limit    int
	Offset   int
}

// Vote - one vote per voter per issue, bucketed by month for reporting.
type Vote struct {
	ID        uuid.UUID
	VoterID   uuid.UUID
	IssueID   uuid.UUID
	VoteMonth string // YYYY-MM
	CreatedAt time.Time
}
