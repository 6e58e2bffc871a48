package repository

import (
	"context"
	"time"

	"civic_backend/internal/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByRefreshHash(ctx context.Context, refreshHash string) (*model.Session, error)
	UpdateAccessJTI(ctx context.Context, id uuid.UUID, accessJTI string) error
	UpdateOrg(ctx context.Context, id uuid.UUID, orgID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type OrgRepository interface {
	Create(ctx context.Context, org *model.Organization) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error)
	AddMember(ctx context.Context, membership *model.Membership) error
	IsMember(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (bool, error)
}

type IssueRepository interface {
	Create(ctx context.Context, issue *model.Issue) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	List(ctx context.Context, filter model.IssueFilter) ([]model.Issue, error)
	Update(ctx context.Context, issue *model.Issue) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error
	IncrementVoteCount(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationRepository - aggregate reads over the issues table by location.
type LocationRepository interface {
	ListLocalBodies(ctx context.Context, state string, district string) ([]string, error)
	CountsByLocation(ctx context.Context, state string, district string, localBody string) (*model.LocationCounts, error)
	TopCategories(ctx context.Context, state string, district string, localBody string, limit uint64) ([]model.CategoryCount, error)
	TrendingLocations(ctx context.Context, limit uint64) ([]model.TrendingLocation, error)
}

type VoteRepository interface {
	Create(ctx context.Context, vote *model.Vote) error
	Exists(ctx context.Context, voterID uuid.UUID, issueID uuid.UUID) (bool, error)
}
