// Package company implements the company search engine and company writes.
//
// Activity searches expand the requested activity into its descendant set
// through the taxonomy resolver. Location searches scan every building with
// the geo filters and collect the companies of the matched buildings.
package company

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

type companyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context, page domain.Page) ([]domain.Company, error)
	ListByBuilding(ctx context.Context, buildingID int64) ([]domain.Company, error)
	ListByBuildingIDs(ctx context.Context, buildingIDs []int64) ([]domain.Company, error)
	ListByActivityIDs(ctx context.Context, activityIDs []int64) ([]domain.Company, error)
	SearchByName(ctx context.Context, substring string) ([]domain.Company, error)
	Create(ctx context.Context, name string, buildingID int64) (*domain.Company, error)
	Update(ctx context.Context, c domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
	DeletePhones(ctx context.Context, companyID int64) error
	AddPhones(ctx context.Context, companyID int64, numbers []string) error
	DeleteActivities(ctx context.Context, companyID int64) error
	AddActivities(ctx context.Context, companyID int64, activityIDs []int64) error
}

type buildingRepo interface {
	Exists(ctx context.Context, id int64) (bool, error)
	ListAll(ctx context.Context) ([]domain.Building, error)
}

type activityRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Activity, error)
}

type taxonomyResolver interface {
	ResolveDescendants(ctx context.Context, activityID int64, maxDepth int) (domain.IDSet, error)
	ResolveDescendantsForNameMatch(ctx context.Context, pattern string, maxDepth int) (domain.IDSet, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service answers company queries and owns the company write rules.
type Service struct {
	companies  companyRepo
	buildings  buildingRepo
	activities activityRepo
	taxonomy   taxonomyResolver
	tx         txManager
	log        *slog.Logger
	maxDepth   int
}

// NewService creates a new company service. maxDepth bounds every activity
// expansion done by the activity searches.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	buildings buildingRepo,
	activities activityRepo,
	taxonomy taxonomyResolver,
	tx txManager,
	maxDepth int,
) *Service {
	return &Service{
		companies:  companies,
		buildings:  buildings,
		activities: activities,
		taxonomy:   taxonomy,
		tx:         tx,
		log:        log.With("service", "company"),
		maxDepth:   maxDepth,
	}
}
