package issue

import (
	"context"
	"time"

	"civic_backend/internal/model"

	"github.com/google/uuid"
)

// Vote - one vote per user per issue. The vote row and the denormalized
// counter on the issue commit in one transaction.
func (s *serv) Vote(ctx context.Context, voterID uuid.UUID, issueID uuid.UUID) error {
	_, err := s.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		voted, err := s.voteRepo.Exists(ctx, voterID, issueID)
		if err != nil {
			return err
		}
		if voted {
			return model.ErrAlreadyVoted
		}

		err = s.voteRepo.Create(ctx, &model.Vote{
			VoterID:   voterID,
			IssueID:   issueID,
			VoteMonth: time.Now().Format("2006-01"),
		})
		if err != nil {
			return err
		}

		return s.issueRepo.IncrementVoteCount(ctx, issueID)
	})
}
