package issue

import (
	"context"
	"errors"

	"civic_backend/internal/model"

	"github.com/google/uuid"
)

// Report - validates and stores a new issue. New issues start as reported.
func (s *serv) Report(ctx context.Context, issue *model.Issue) (*model.Issue, error) {
	if issue.Title == "" || issue.Description == "" {
		return nil, errors.New("issue title and description are required")
	}
	if issue.State == "" || issue.District == "" {
		return nil, errors.New("issue state and district are required")
	}
	if issue.Severity == "" {
		issue.Severity = model.SeverityMedium
	}
	if !issue.Severity.Valid() {
		return nil, errors.New("invalid issue severity")
	}

	issue.Status = model.StatusReported

	id, err := s.issueRepo.Create(ctx, issue)
	if err != nil {
		return nil, err
	}
	issue.ID = id

	return issue, nil
}

// Get - single issue by ID.
func (s *serv) Get(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	return s.issueRepo.GetByID(ctx, id)
}

// List - filtered issue listing.
func (s *serv) List(ctx context.Context, filter model.IssueFilter) ([]model.Issue, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, errors.New("invalid issue status filter")
	}

	return s.issueRepo.List(ctx, filter)
}

// UpdateStatus - moves an issue through its lifecycle.
func (s *serv) UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error {
	if !status.Valid() {
		return errors.New("invalid issue status")
	}

	return s.issueRepo.UpdateStatus(ctx, id, status)
}
