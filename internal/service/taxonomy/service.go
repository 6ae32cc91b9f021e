// Package taxonomy serves the activity taxonomy: tree rendering, descendant
// resolution for company search and activity CRUD.
//
// Every read works on a full snapshot of the activities table, either loaded
// from the store or from the snapshot cache. Writes invalidate the cache.
package taxonomy

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

type activityRepo interface {
	ListAll(ctx context.Context) ([]domain.Activity, error)
	List(ctx context.Context, page domain.Page) ([]domain.Activity, error)
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetByName(ctx context.Context, name string) (*domain.Activity, error)
	Create(ctx context.Context, name string, parentID *int64) (*domain.Activity, error)
	Update(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// snapshotCache holds the whole activities table. Generation changes on every
// Invalidate; Set must drop the snapshot when gen is no longer current.
type snapshotCache interface {
	Get(ctx context.Context) ([]domain.Activity, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, gen int64, activities []domain.Activity) error
	Invalidate(ctx context.Context) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides taxonomy reads and activity management.
type Service struct {
	activities activityRepo
	cache      snapshotCache
	tx         txManager
	log        *slog.Logger
	maxDepth   int
}

// NewService creates a new taxonomy service. cache may be nil, in which case
// every read loads the snapshot from the store. maxDepth is the traversal
// bound used when callers do not pass one explicitly.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	cache snapshotCache,
	tx txManager,
	maxDepth int,
) *Service {
	if cache == nil {
		cache = noCache{}
	}
	return &Service{
		activities: activities,
		cache:      cache,
		tx:         tx,
		log:        log.With("service", "taxonomy"),
		maxDepth:   maxDepth,
	}
}

// MaxDepth returns the configured traversal bound.
func (s *Service) MaxDepth() int { return s.maxDepth }

type noCache struct{}

func (noCache) Get(context.Context) ([]domain.Activity, bool, error) { return nil, false, nil }
func (noCache) Generation(context.Context) (int64, error)            { return 0, nil }
func (noCache) Set(context.Context, int64, []domain.Activity) error  { return nil }
func (noCache) Invalidate(context.Context) error                     { return nil }
