// Package activity implements the activity repository using PostgreSQL.
// It is the taxonomy store: the whole activity forest is read in one query
// and traversed in memory by the taxonomy service.
package activity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/company-directory/internal/adapter/postgres"
	"github.com/heartmarshall/company-directory/internal/domain"
)

const table = "activities"

var columns = []string{"id", "name", "parent_id"}

type activityRow struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	ParentID *int64 `db:"parent_id"`
}

func (r activityRow) toDomain() domain.Activity {
	return domain.Activity{ID: r.ID, Name: r.Name, ParentID: r.ParentID}
}

func toDomain(rows []activityRow) []domain.Activity {
	out := make([]domain.Activity, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListAll returns every activity ordered by id.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Activity, error) {
	query := postgres.Builder.Select(columns...).From(table).OrderBy("id")
	return r.selectMany(ctx, query, "list all activities")
}

// List returns one page of activities ordered by id.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.Activity, error) {
	query := postgres.Builder.Select(columns...).From(table).OrderBy("id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit))
	return r.selectMany(ctx, query, "list activities")
}

// GetByID returns an activity by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})
	return r.selectOne(ctx, query, id)
}

// GetByName returns the activity with exactly this name. When several share
// the name the one with the lowest id wins.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"name": name}).
		OrderBy("id").
		Limit(1)
	return r.selectOne(ctx, query, name)
}

// GetByIDs returns the activities among ids that exist, ordered by id.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Activity, error) {
	if len(ids) == 0 {
		return []domain.Activity{}, nil
	}
	query := postgres.Builder.Select(columns...).From(table).
		Where("id = ANY(?)", ids).
		OrderBy("id")
	return r.selectMany(ctx, query, "get activities by ids")
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an activity and returns it with its id.
func (r *Repo) Create(ctx context.Context, name string, parentID *int64) (*domain.Activity, error) {
	query := postgres.Builder.Insert(table).
		Columns("name", "parent_id").
		Values(name, parentID).
		Suffix("RETURNING id, name, parent_id")
	return r.selectOne(ctx, query, name)
}

// Update overwrites name and parent of an activity.
func (r *Repo) Update(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	query := postgres.Builder.Update(table).
		Set("name", a.Name).
		Set("parent_id", a.ParentID).
		Where(sq.Eq{"id": a.ID}).
		Suffix("RETURNING id, name, parent_id")
	return r.selectOne(ctx, query, a.ID)
}

// Delete removes an activity. Company links cascade; an activity that still
// has children is rejected with domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	sql, args, err := postgres.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete activity: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, "activity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectOne(ctx context.Context, query sq.Sqlizer, key any) (*domain.Activity, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity query: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity", key)
	}

	a := row.toDomain()
	return &a, nil
}

func (r *Repo) selectMany(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Activity, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toDomain(rows), nil
}
