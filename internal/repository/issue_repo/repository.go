package issue_repo

import (
	"context"
	"errors"
	"fmt"

	"civic_backend/internal/model"
	"civic_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "issues"
	colID          = "id"
	colReporterID  = "reporter_id"
	colOrgID       = "org_id"
	colTitle       = "title"
	colDescription = "description"
	colCategory    = "category"
	colSeverity    = "severity"
	colStatus      = "status"
	colState       = "state"
	colDistrict    = "district"
	colLocalBody   = "local_body"
	colWard        = "ward"
	colVoteCount   = "vote_count"
	colCreatedAt   = "created_at"
)

const defaultListLimit = 50

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var allColumns = []string{
	colID, colReporterID, colOrgID, colTitle, colDescription, colCategory,
	colSeverity, colStatus, colState, colDistrict, colLocalBody, colWard,
	colVoteCount, colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewIssueRepository(dbc *pgxpool.Pool) repository.IssueRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - inserts an issue. Returns the generated issue ID.
func (r *repo) Create(ctx context.Context, issue *model.Issue) (uuid.UUID, error) {
	id := uuid.New()

	query := psql.Insert(table).
		Columns(colID, colReporterID, colOrgID, colTitle, colDescription, colCategory,
			colSeverity, colStatus, colState, colDistrict, colLocalBody, colWard).
		Values(id, issue.ReporterID, issue.OrgID, issue.Title, issue.Description, issue.Category,
			issue.Severity, issue.Status, issue.State, issue.District, issue.LocalBody, issue.Ward)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create issue: %w", err)
	}

	return id, nil
}

// GetByID - returns the issue model by ID.
func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	query := psql.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	issue, err := scanIssue(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return issue, nil
}

// List - filtered issue listing, most voted first.
func (r *repo) List(ctx context.Context, filter model.IssueFilter) ([]model.Issue, error) {
	query := psql.Select(allColumns...).
		From(table).
		OrderBy(colVoteCount + " DESC, " + colCreatedAt + " DESC")

	if filter.State != "" {
		query = query.Where(sq.Eq{colState: filter.State})
	}
	if filter.District != "" {
		query = query.Where(sq.Eq{colDistrict: filter.District})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{colStatus: filter.Status})
	}
	if filter.Category != "" {
		query = query.Where(sq.Eq{colCategory: filter.Category})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query = query.Limit(uint64(limit))
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []model.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, *issue)
	}

	return issues, rows.Err()
}

// Update - overwrites the reporter-editable fields of an issue.
func (r *repo) Update(ctx context.Context, issue *model.Issue) error {
	query := psql.Update(table).
		Set(colTitle, issue.Title).
		Set(colDescription, issue.Description).
		Set(colCategory, issue.Category).
		Set(colSeverity, issue.Severity).
		Set(colStatus, issue.Status).
		Where(sq.Eq{colID: issue.ID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// UpdateStatus - moves an issue through its lifecycle.
func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.IssueStatus) error {
	query := psql.Update(table).
		Set(colStatus, status).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// IncrementVoteCount - bumps the denormalized vote counter.
func (r *repo) IncrementVoteCount(ctx context.Context, id uuid.UUID) error {
	query := psql.Update(table).
		Set(colVoteCount, sq.Expr(colVoteCount+" + 1")).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// Delete - removes an issue. Votes go with it via the FK cascade.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanIssue(row pgx.Row) (*model.Issue, error) {
	var issue model.Issue
	err := row.Scan(&issue.ID, &issue.ReporterID, &issue.OrgID, &issue.Title, &issue.Description,
		&issue.Category, &issue.Severity, &issue.Status, &issue.State, &issue.District,
		&issue.LocalBody, &issue.Ward, &issue.VoteCount, &issue.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &issue, nil
}
