// Package company implements the company repository using PostgreSQL.
// Besides the companies table it owns the company_phones and company_activity
// tables, which only exist as parts of a company.
package company

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/company-directory/internal/adapter/postgres"
	"github.com/heartmarshall/company-directory/internal/domain"
)

const (
	table         = "companies"
	phonesTable   = "company_phones"
	activityLinks = "company_activity"
)

var columns = []string{"id", "name", "building_id"}

// ActivityWithCompanyID is the batch result type for ActivitiesByCompanyIDs.
type ActivityWithCompanyID struct {
	CompanyID int64
	domain.Activity
}

type companyRow struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	BuildingID int64  `db:"building_id"`
}

type phoneRow struct {
	ID        int64  `db:"id"`
	CompanyID int64  `db:"company_id"`
	Number    string `db:"phone_number"`
}

type linkedActivityRow struct {
	CompanyID int64  `db:"company_id"`
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	ParentID  *int64 `db:"parent_id"`
}

func (r companyRow) toDomain() domain.Company {
	return domain.Company{ID: r.ID, Name: r.Name, BuildingID: r.BuildingID}
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN read queries
// ---------------------------------------------------------------------------

const listByActivityIDsSQL = `
SELECT DISTINCT c.id, c.name, c.building_id
FROM companies c
JOIN company_activity ca ON ca.company_id = c.id
WHERE ca.activity_id = ANY($1)
ORDER BY c.id`

const activitiesByCompanyIDsSQL = `
SELECT ca.company_id, a.id, a.name, a.parent_id
FROM company_activity ca
JOIN activities a ON a.id = ca.activity_id
WHERE ca.company_id = ANY($1)
ORDER BY ca.company_id, a.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})
	return r.selectOne(ctx, query, id)
}

// List returns one page of companies ordered by id.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.Company, error) {
	query := postgres.Builder.Select(columns...).From(table).OrderBy("id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit))
	return r.selectMany(ctx, query, "list companies")
}

// ListByBuilding returns the companies of one building ordered by id.
func (r *Repo) ListByBuilding(ctx context.Context, buildingID int64) ([]domain.Company, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"building_id": buildingID}).
		OrderBy("id")
	return r.selectMany(ctx, query, "list companies by building")
}

// ListByBuildingIDs returns the companies of several buildings ordered by id.
func (r *Repo) ListByBuildingIDs(ctx context.Context, buildingIDs []int64) ([]domain.Company, error) {
	if len(buildingIDs) == 0 {
		return []domain.Company{}, nil
	}
	query := postgres.Builder.Select(columns...).From(table).
		Where("building_id = ANY(?)", buildingIDs).
		OrderBy("id")
	return r.selectMany(ctx, query, "list companies by buildings")
}

// ListByActivityIDs returns the companies linked to at least one of activityIDs, ordered by id.
func (r *Repo) ListByActivityIDs(ctx context.Context, activityIDs []int64) ([]domain.Company, error) {
	if len(activityIDs) == 0 {
		return []domain.Company{}, nil
	}

	var rows []companyRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByActivityIDsSQL, activityIDs)
	if err != nil {
		return nil, fmt.Errorf("list companies by activities: %w", err)
	}
	return toDomain(rows), nil
}

// SearchByName returns companies whose name contains substring, ignoring case.
// LIKE wildcards in substring match literally.
func (r *Repo) SearchByName(ctx context.Context, substring string) ([]domain.Company, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.ILike{"name": "%" + escapeLike(substring) + "%"}).
		OrderBy("id")
	return r.selectMany(ctx, query, "search companies by name")
}

// PhonesByCompanyIDs returns the phones of several companies ordered by
// company and creation order.
func (r *Repo) PhonesByCompanyIDs(ctx context.Context, companyIDs []int64) ([]domain.Phone, error) {
	if len(companyIDs) == 0 {
		return []domain.Phone{}, nil
	}

	sql, args, err := postgres.Builder.Select("id", "company_id", "phone_number").From(phonesTable).
		Where("company_id = ANY(?)", companyIDs).
		OrderBy("company_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build phones query: %w", err)
	}

	var rows []phoneRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("phones by company ids: %w", err)
	}

	out := make([]domain.Phone, len(rows))
	for i, row := range rows {
		out[i] = domain.Phone{ID: row.ID, CompanyID: row.CompanyID, Number: row.Number}
	}
	return out, nil
}

// ActivitiesByCompanyIDs returns the activities linked to several companies (batch for DataLoader).
func (r *Repo) ActivitiesByCompanyIDs(ctx context.Context, companyIDs []int64) ([]ActivityWithCompanyID, error) {
	if len(companyIDs) == 0 {
		return []ActivityWithCompanyID{}, nil
	}

	var rows []linkedActivityRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, activitiesByCompanyIDsSQL, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("activities by company ids: %w", err)
	}

	out := make([]ActivityWithCompanyID, len(rows))
	for i, row := range rows {
		out[i] = ActivityWithCompanyID{
			CompanyID: row.CompanyID,
			Activity:  domain.Activity{ID: row.ID, Name: row.Name, ParentID: row.ParentID},
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Foreign keys of the company tables, keyed by constraint name. A violation
// means the referenced row was removed after the service checked it.
var (
	buildingRef = map[string]string{"companies_building_id_fkey": "building"}
	activityRef = map[string]string{"company_activity_activity_id_fkey": "activities"}
)

// Create inserts a company row.
func (r *Repo) Create(ctx context.Context, name string, buildingID int64) (*domain.Company, error) {
	query := postgres.Builder.Insert(table).
		Columns("name", "building_id").
		Values(name, buildingID).
		Suffix("RETURNING id, name, building_id")
	return r.writeOne(ctx, query, name)
}

// Update overwrites name and building of a company.
func (r *Repo) Update(ctx context.Context, c domain.Company) (*domain.Company, error) {
	query := postgres.Builder.Update(table).
		Set("name", c.Name).
		Set("building_id", c.BuildingID).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING id, name, building_id")
	return r.writeOne(ctx, query, c.ID)
}

// Delete removes the company row. Phones and activity links must be removed
// first (DeletePhones, DeleteActivities) or are removed by the cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapDeleteError(err, "company", id)
	}
	if n == 0 {
		return fmt.Errorf("company %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeletePhones removes every phone of a company.
func (r *Repo) DeletePhones(ctx context.Context, companyID int64) error {
	if _, err := r.exec(ctx, postgres.Builder.Delete(phonesTable).Where(sq.Eq{"company_id": companyID})); err != nil {
		return fmt.Errorf("delete phones of company %d: %w", companyID, err)
	}
	return nil
}

// AddPhones inserts phones for a company in the given order.
func (r *Repo) AddPhones(ctx context.Context, companyID int64, numbers []string) error {
	if len(numbers) == 0 {
		return nil
	}

	insert := postgres.Builder.Insert(phonesTable).Columns("company_id", "phone_number")
	for _, n := range numbers {
		insert = insert.Values(companyID, n)
	}

	if _, err := r.exec(ctx, insert); err != nil {
		return postgres.MapError(err, "company phones", companyID)
	}
	return nil
}

// DeleteActivities removes every activity link of a company.
func (r *Repo) DeleteActivities(ctx context.Context, companyID int64) error {
	if _, err := r.exec(ctx, postgres.Builder.Delete(activityLinks).Where(sq.Eq{"company_id": companyID})); err != nil {
		return fmt.Errorf("delete activity links of company %d: %w", companyID, err)
	}
	return nil
}

// AddActivities links a company to activities. Duplicate links are ignored.
func (r *Repo) AddActivities(ctx context.Context, companyID int64, activityIDs []int64) error {
	if len(activityIDs) == 0 {
		return nil
	}

	insert := postgres.Builder.Insert(activityLinks).Columns("company_id", "activity_id")
	for _, id := range activityIDs {
		insert = insert.Values(companyID, id)
	}
	insert = insert.Suffix("ON CONFLICT (company_id, activity_id) DO NOTHING")

	if _, err := r.exec(ctx, insert); err != nil {
		return postgres.MapWriteError(err, "company activities", companyID, activityRef)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toDomain(rows []companyRow) []domain.Company {
	out := make([]domain.Company, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

func (r *Repo) exec(ctx context.Context, query sq.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) selectOne(ctx context.Context, query sq.Sqlizer, key any) (*domain.Company, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company query: %w", err)
	}

	var row companyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "company", key)
	}

	c := row.toDomain()
	return &c, nil
}

// writeOne runs an INSERT or UPDATE ... RETURNING on the companies table.
func (r *Repo) writeOne(ctx context.Context, query sq.Sqlizer, key any) (*domain.Company, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company statement: %w", err)
	}

	var row companyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapWriteError(err, "company", key, buildingRef)
	}

	c := row.toDomain()
	return &c, nil
}

func (r *Repo) selectMany(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Company, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var rows []companyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomain(rows), nil
}
