package converter

import (
	dto "civic_backend/internal/api/dto/auth"
	"civic_backend/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Phone:    req.Phone,
		Password: req.Password,
	}
}

func ToAuthResponse(data *model.AuthData) dto.AuthResponse {
	return dto.AuthResponse{
		AccessToken: data.AccessToken,
		UserID:      data.UserID.String(),
	}
}

func ToMeResponse(user *model.User, identity *model.Identity) dto.MeResponse {
	resp := dto.MeResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Login: user.Login,
		Phone: user.Phone,
	}
	if identity.OrgID != nil {
		orgID := identity.OrgID.String()
		resp.OrgID = &orgID
	}
	return resp
}
