package service

import (
	"context"

	"civic_backend/internal/model"

	"github.com/google/uuid"
)

type AuthService interface {
	SendOTP(ctx context.Context, phone string) error
	Register(ctx context.Context, user *model.User, otpCode string) (*model.AuthData, error)
	Login(ctx context.Context, login string, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, refreshToken string) (newAccessToken string, err error)
	Validate(ctx context.Context, accessToken string) (*model.Identity, error)
	Logout(ctx context.Context, refreshToken string, accessToken string) error
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type OrgService interface {
	Create(ctx context.Context, userID uuid.UUID, refreshToken string, org *model.Organization) (*model.Organization, string, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error)
	Switch(ctx context.Context, userID uuid.UUID, refreshToken string, orgID uuid.UUID) (newAccessToken string, err error)
}

type IssueService interface {
	Report(ctx context.Context, issue *model.Issue) (*model.Issue, error)
	List(ctx context.Context, filter model.IssueFilter) ([]model.Issue, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	Update(ctx context.Context, callerID uuid.UUID, id uuid.UUID, upd model.IssueUpdate) (*model.Issue, error)
	Vote(ctx context.Context, voterID uuid.UUID, issueID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error
	Delete(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error
}

type LocationService interface {
	States() []model.StateInfo
	Districts(state string) []string
	LocalBodies(ctx context.Context, state string, district string) ([]string, error)
	Stats(ctx context.Context, state string, district string, localBody string) (*model.LocationStats, error)
	Trending(ctx context.Context, limit int) ([]model.TrendingLocation, error)
}

// OTPSender - delivers one-time codes. Delivery transport lives outside
// this service; a logging sender is wired by default.
type OTPSender interface {
	Send(ctx context.Context, phone string, code string) error
}
