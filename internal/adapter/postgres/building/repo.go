// Package building implements the building repository using PostgreSQL.
package building

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/company-directory/internal/adapter/postgres"
	"github.com/heartmarshall/company-directory/internal/domain"
)

const table = "buildings"

var columns = []string{"id", "address", "latitude", "longitude"}

const returning = "RETURNING id, address, latitude, longitude"

type buildingRow struct {
	ID        int64   `db:"id"`
	Address   string  `db:"address"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

func (r buildingRow) toDomain() domain.Building {
	return domain.Building{ID: r.ID, Address: r.Address, Latitude: r.Latitude, Longitude: r.Longitude}
}

// Repo provides building persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new building repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a building by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Building, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})
	return r.selectOne(ctx, query, id)
}

// GetByAddress returns the building with exactly this address.
func (r *Repo) GetByAddress(ctx context.Context, address string) (*domain.Building, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"address": address})
	return r.selectOne(ctx, query, address)
}

// GetByIDs returns the buildings among ids that exist, ordered by id.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Building, error) {
	if len(ids) == 0 {
		return []domain.Building{}, nil
	}
	query := postgres.Builder.Select(columns...).From(table).
		Where("id = ANY(?)", ids).
		OrderBy("id")
	return r.selectMany(ctx, query, "get buildings by ids")
}

// List returns one page of buildings ordered by id.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.Building, error) {
	query := postgres.Builder.Select(columns...).From(table).OrderBy("id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit))
	return r.selectMany(ctx, query, "list buildings")
}

// ListAll returns every building ordered by id. This is the input of the geo filters.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Building, error) {
	query := postgres.Builder.Select(columns...).From(table).OrderBy("id")
	return r.selectMany(ctx, query, "list all buildings")
}

// Exists reports whether a building with id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM buildings WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("building exists %d: %w", id, err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a building. A duplicate address yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, b domain.Building) (*domain.Building, error) {
	query := postgres.Builder.Insert(table).
		Columns("address", "latitude", "longitude").
		Values(b.Address, b.Latitude, b.Longitude).
		Suffix(returning)
	return r.selectOne(ctx, query, b.Address)
}

// Update overwrites every attribute of a building.
func (r *Repo) Update(ctx context.Context, b domain.Building) (*domain.Building, error) {
	query := postgres.Builder.Update(table).
		Set("address", b.Address).
		Set("latitude", b.Latitude).
		Set("longitude", b.Longitude).
		Where(sq.Eq{"id": b.ID}).
		Suffix(returning)
	return r.selectOne(ctx, query, b.ID)
}

// Delete removes a building. A building that still hosts companies is
// rejected with domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	sql, args, err := postgres.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete building: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, "building", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("building %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectOne(ctx context.Context, query sq.Sqlizer, key any) (*domain.Building, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build building query: %w", err)
	}

	var row buildingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "building", key)
	}

	b := row.toDomain()
	return &b, nil
}

func (r *Repo) selectMany(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Building, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var rows []buildingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.Building, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
