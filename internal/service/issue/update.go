package issue

import (
	"context"
	"errors"

	"civic_backend/internal/model"

	"github.com/google/uuid"
)

// Update - partial edit of an issue by its reporter. Anyone else gets
// ErrNotReporter.
func (s *serv) Update(ctx context.Context, callerID uuid.UUID, id uuid.UUID, upd model.IssueUpdate) (*model.Issue, error) {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue.ReporterID != callerID {
		return nil, model.ErrNotReporter
	}

	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, errors.New("issue title cannot be empty")
		}
		issue.Title = *upd.Title
	}
	if upd.Description != nil {
		if *upd.Description == "" {
			return nil, errors.New("issue description cannot be empty")
		}
		issue.Description = *upd.Description
	}
	if upd.Category != nil {
		issue.Category = *upd.Category
	}
	if upd.Severity != nil {
		if !upd.Severity.Valid() {
			return nil, errors.New("invalid issue severity")
		}
		issue.Severity = *upd.Severity
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, errors.New("invalid issue status")
		}
		issue.Status = *upd.Status
	}

	if err := s.issueRepo.Update(ctx, issue); err != nil {
		return nil, err
	}

	return issue, nil
}

// Delete - removes an issue. Reporter only.
func (s *serv) Delete(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if issue.ReporterID != callerID {
		return model.ErrNotReporter
	}

	return s.issueRepo.Delete(ctx, id)
}
