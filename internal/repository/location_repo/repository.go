package location_repo

import (
	"context"

	"civic_backend/internal/model"
	"civic_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "issues"
	colID        = "id"
	colCategory  = "category"
	colSeverity  = "severity"
	colStatus    = "status"
	colState     = "state"
	colDistrict  = "district"
	colLocalBody = "local_body"
	colVoteCount = "vote_count"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLocationRepository(dbc *pgxpool.Pool) repository.LocationRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListLocalBodies - distinct local bodies seen in reported issues for a
// district. Empty values are skipped.
func (r *repo) ListLocalBodies(ctx context.Context, state string, district string) ([]string, error) {
	query := psql.Select("DISTINCT " + colLocalBody).
		From(table).
		Where(sq.Eq{colState: state, colDistrict: district}).
		Where(sq.NotEq{colLocalBody: nil}).
		Where(sq.NotEq{colLocalBody: ""}).
		OrderBy(colLocalBody)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var localBodies []string
	for rows.Next() {
		var localBody string
		if err := rows.Scan(&localBody); err != nil {
			return nil, err
		}
		localBodies = append(localBodies, localBody)
	}

	return localBodies, rows.Err()
}

// CountsByLocation - total/resolved/pending/critical issue counts for a
// location slice, in one query via filtered aggregates.
func (r *repo) CountsByLocation(ctx context.Context, state string, district string, localBody string) (*model.LocationCounts, error) {
	query := psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE "+colStatus+" = 'resolved')",
		"COUNT(*) FILTER (WHERE "+colStatus+" IN ('reported', 'acknowledged', 'in_progress'))",
		"COUNT(*) FILTER (WHERE "+colSeverity+" = 'critical')",
	).From(table)
	query = locationWhere(query, state, district, localBody)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var counts model.LocationCounts
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&counts.Total, &counts.Resolved, &counts.Pending, &counts.Critical)
	if err != nil {
		return nil, err
	}

	return &counts, nil
}

// TopCategories - the most reported categories for a location slice.
func (r *repo) TopCategories(ctx context.Context, state string, district string, localBody string, limit uint64) ([]model.CategoryCount, error) {
	query := psql.Select(colCategory, "COUNT("+colID+")").
		From(table).
		GroupBy(colCategory).
		OrderBy("COUNT(" + colID + ") DESC").
		Limit(limit)
	query = locationWhere(query, state, district, localBody)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.CategoryCount
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// TrendingLocations - state/district pairs with the most reported issues.
func (r *repo) TrendingLocations(ctx context.Context, limit uint64) ([]model.TrendingLocation, error) {
	query := psql.Select(
		colState,
		colDistrict,
		"COUNT("+colID+")",
		"COALESCE(SUM("+colVoteCount+"), 0)",
	).
		From(table).
		GroupBy(colState, colDistrict).
		OrderBy("COUNT(" + colID + ") DESC").
		Limit(limit)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []model.TrendingLocation
	for rows.Next() {
		var l model.TrendingLocation
		if err := rows.Scan(&l.State, &l.District, &l.IssueCount, &l.TotalVotes); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}

func locationWhere(query sq.SelectBuilder, state string, district string, localBody string) sq.SelectBuilder {
	query = query.Where(sq.Eq{colState: state})
	if district != "" {
		query = query.Where(sq.Eq{colDistrict: district})
	}
	if localBody != "" {
		query = query.Where(sq.Eq{colLocalBody: localBody})
	}
	return query
}
