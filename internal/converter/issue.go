package converter

import (
	dto "civic_backend/internal/api/dto/issue"
	"civic_backend/internal/model"
)

func CreateRequestToIssueModel(req *dto.CreateRequest, identity *model.Identity) *model.Issue {
	issue := &model.Issue{
		ReporterID:  identity.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Severity:    model.IssueSeverity(req.Severity),
		State:       req.State,
		District:    req.District,
		LocalBody:   req.LocalBody,
		Ward:        req.Ward,
	}
	if identity.OrgID != nil {
		issue.OrgID = *identity.OrgID
	}
	return issue
}

func UpdateRequestToIssueUpdate(req *dto.UpdateRequest) model.IssueUpdate {
	upd := model.IssueUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Severity != nil {
		severity := model.IssueSeverity(*req.Severity)
		upd.Severity = &severity
	}
	if req.Status != nil {
		status := model.IssueStatus(*req.Status)
		upd.Status = &status
	}
	return upd
}

func ToIssueResponse(issue *model.Issue) dto.IssueResponse {
	return dto.IssueResponse{
		ID:          issue.ID.String(),
		ReporterID:  issue.ReporterID.String(),
		OrgID:       issue.OrgID.String(),
		Title:       issue.Title,
		Description: issue.Description,
		Category:    issue.Category,
		Severity:    string(issue.Severity),
		Status:      string(issue.Status),
		State:       issue.State,
		District:    issue.District,
		LocalBody:   issue.LocalBody,
		Ward:        issue.Ward,
		VoteCount:   issue.VoteCount,
		CreatedAt:   issue.CreatedAt,
	}
}

func ToListResponse(issues []model.Issue) dto.ListResponse {
	result := dto.ListResponse{
		Issues: make([]dto.IssueResponse, len(issues)),
	}
	for i := range issues {
		result.Issues[i] = ToIssueResponse(&issues[i])
	}
	return result
}
