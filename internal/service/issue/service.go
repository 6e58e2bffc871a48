package issue

import (
	"civic_backend/internal/repository"
	"civic_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager trm.Manager
	issueRepo repository.IssueRepository
	voteRepo  repository.VoteRepository
}

func NewService(
	txManager trm.Manager,
	issueRepo repository.IssueRepository,
	voteRepo repository.VoteRepository,
) service.IssueService {
	return &serv{
		txManager: txManager,
		issueRepo: issueRepo,
		voteRepo:  voteRepo,
	}
}
