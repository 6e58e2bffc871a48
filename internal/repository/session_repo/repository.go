package session_repo

import (
	"context"
	"errors"
	"time"

	"civic_backend/internal/model"
	"civic_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "sessions"
	colID          = "id"
	colUserID      = "user_id"
	colOrgID       = "org_id"
	colRefreshHash = "refresh_hash"
	colAccessJTI   = "access_jti"
	colExpiresAt   = "expires_at"
	colCreatedAt   = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - inserts a session row.
// Session carries the refresh hash at rest, never the token itself.
func (r *repo) Create(ctx context.Context, session *model.Session) error {
	query := psql.Insert(table).
		Columns(colID, colUserID, colOrgID, colRefreshHash, colAccessJTI, colExpiresAt).
		Values(session.ID, session.UserID, session.OrgID, session.RefreshHash, session.AccessJTI, session.ExpiresAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetByRefreshHash - looks a session up by refresh token hash.
// Returns model.ErrNotFound when no row matches.
func (r *repo) GetByRefreshHash(ctx context.Context, refreshHash string) (*model.Session, error) {
	query := psql.Select(colID, colUserID, colOrgID, colRefreshHash, colAccessJTI, colExpiresAt, colCreatedAt).
		From(table).
		Where(sq.Eq{colRefreshHash: refreshHash})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var session model.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&session.ID, &session.UserID, &session.OrgID, &session.RefreshHash,
			&session.AccessJTI, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &session, nil
}

// UpdateAccessJTI - records the jti of the most recently minted access token.
func (r *repo) UpdateAccessJTI(ctx context.Context, id uuid.UUID, accessJTI string) error {
	query := psql.Update(table).
		Set(colAccessJTI, accessJTI).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// UpdateOrg - switches the active organization context of a session.
func (r *repo) UpdateOrg(ctx context.Context, id uuid.UUID, orgID uuid.UUID) error {
	query := psql.Update(table).
		Set(colOrgID, orgID).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// Delete - removes a session row. Deleting an absent session is not an error.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// DeleteExpired - drops sessions past their expiry. Returns rows removed.
func (r *repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := psql.Delete(table).
		Where(sq.LtOrEq{colExpiresAt: now})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
