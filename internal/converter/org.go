package converter

import (
	dto "civic_backend/internal/api/dto/org"
	"civic_backend/internal/model"
)

func CreateRequestToOrgModel(req *dto.CreateRequest) *model.Organization {
	return &model.Organization{
		Name:     req.Name,
		State:    req.State,
		District: req.District,
	}
}

func ToOrgResponse(org *model.Organization) dto.OrgResponse {
	return dto.OrgResponse{
		ID:       org.ID.String(),
		Name:     org.Name,
		State:    org.State,
		District: org.District,
	}
}

func ToOrgResponses(orgs []model.Organization) []dto.OrgResponse {
	result := make([]dto.OrgResponse, len(orgs))
	for i := range orgs {
		result[i] = ToOrgResponse(&orgs[i])
	}
	return result
}
