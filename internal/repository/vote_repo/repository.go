package vote_repo

import (
	"context"
	"errors"

	"civic_backend/internal/model"
	"civic_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "votes"
	colID        = "id"
	colVoterID   = "voter_id"
	colIssueID   = "issue_id"
	colVoteMonth = "vote_month"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewVoteRepository(dbc *pgxpool.Pool) repository.VoteRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - records a vote. The (voter_id, issue_id) pair is unique in the schema.
func (r *repo) Create(ctx context.Context, vote *model.Vote) error {
	query := psql.Insert(table).
		Columns(colID, colVoterID, colIssueID, colVoteMonth).
		Values(uuid.New(), vote.VoterID, vote.IssueID, vote.VoteMonth)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// Exists - reports whether the voter already voted for the issue.
func (r *repo) Exists(ctx context.Context, voterID uuid.UUID, issueID uuid.UUID) (bool, error) {
	query := psql.Select("1").
		From(table).
		Where(sq.Eq{colVoterID: voterID, colIssueID: issueID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
