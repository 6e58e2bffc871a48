package user_repo

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
	table           = "users"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPhone        = "phone"
	colPasswordHash = "password_hash"
	colCreatedAt    = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - inserts a new user. Returns the generated user ID.
func (r *repo) Create(ctx context.Context, user *model.User) (uuid.UUID, error) {
	id := uuid.New()

	query := psql.Insert(table).
		Columns(colID, colName, colLogin, colPhone, colPasswordHash).
		Values(id, user.Name, user.Login, user.Phone, user.Password)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// GetByID - returns the user model by ID.
func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colID: id})
}

// GetByLogin - returns the user model by login.
func (r *repo) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colLogin: login})
}

// GetByPhone - returns the user model by phone number.
func (r *repo) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colPhone: phone})
}

func (r *repo) getOne(ctx context.Context, where sq.Eq) (*model.User, error) {
	query := psql.Select(colID, colName, colLogin, colPhone, colPasswordHash, colCreatedAt).
		From(table).
		Where(where)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Name, &user.Login, &user.Phone, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
