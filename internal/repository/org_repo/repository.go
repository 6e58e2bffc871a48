package org_repo

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
	table        = "organizations"
	colID        = "id"
	colName      = "name"
	colState     = "state"
	colDistrict  = "district"
	colCreatedAt = "created_at"

	memberTable = "organization_members"
	colOrgID    = "org_id"
	colUserID   = "user_id"
	colRole     = "role"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewOrgRepository(dbc *pgxpool.Pool) repository.OrgRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - inserts a new organization. Returns the generated ID.
func (r *repo) Create(ctx context.Context, org *model.Organization) (uuid.UUID, error) {
	id := uuid.New()

	query := psql.Insert(table).
		Columns(colID, colName, colState, colDistrict).
		Values(id, org.Name, org.State, org.District)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create organization: %w", err)
	}

	return id, nil
}

// GetByID - returns the organization model by ID.
func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	query := psql.Select(colID, colName, colState, colDistrict, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var org model.Organization
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&org.ID, &org.Name, &org.State, &org.District, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &org, nil
}

// ListForUser - organizations the user is a member of, newest first.
func (r *repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error) {
	query := psql.Select("o."+colID, "o."+colName, "o."+colState, "o."+colDistrict, "o."+colCreatedAt).
		From(table + " o").
		Join(memberTable + " m ON m." + colOrgID + " = o." + colID).
		Where(sq.Eq{"m." + colUserID: userID}).
		OrderBy("o." + colCreatedAt + " DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []model.Organization
	for rows.Next() {
		var org model.Organization
		err = rows.Scan(&org.ID, &org.Name, &org.State, &org.District, &org.CreatedAt)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

// AddMember - records organization membership with a role.
func (r *repo) AddMember(ctx context.Context, membership *model.Membership) error {
	query := psql.Insert(memberTable).
		Columns(colOrgID, colUserID, colRole).
		Values(membership.OrgID, membership.UserID, membership.Role)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// IsMember - reports whether the user belongs to the organization.
func (r *repo) IsMember(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (bool, error) {
	query := psql.Select("1").
		From(memberTable).
		Where(sq.Eq{colOrgID: orgID, colUserID: userID})

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
