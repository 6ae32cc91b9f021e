// Package dataloader provides per-request DataLoaders that batch the
// relation lookups of company responses (building, phones, activities)
// into single SQL calls. DataLoaders call repositories directly, bypassing
// the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/company-directory/internal/adapter/postgres/company"
	"github.com/heartmarshall/company-directory/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type buildingRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Building, error)
}

type phoneRepo interface {
	PhonesByCompanyIDs(ctx context.Context, companyIDs []int64) ([]domain.Phone, error)
}

type activityLinkRepo interface {
	ActivitiesByCompanyIDs(ctx context.Context, companyIDs []int64) ([]company.ActivityWithCompanyID, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Building buildingRepo
	Phone    phoneRepo
	Activity activityLinkRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	BuildingByID          *dataloader.Loader[int64, *domain.Building]
	PhonesByCompanyID     *dataloader.Loader[int64, []domain.Phone]
	ActivitiesByCompanyID *dataloader.Loader[int64, []domain.Activity]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		BuildingByID:          newLoader(newBuildingBatchFn(repos.Building)),
		PhonesByCompanyID:     newLoader(newPhonesBatchFn(repos.Phone)),
		ActivitiesByCompanyID: newLoader(newActivitiesBatchFn(repos.Activity)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware installed?")
	}
	return l
}
