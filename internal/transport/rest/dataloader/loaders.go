package dataloader

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// ---------------------------------------------------------------------------
// Building by ID
// ---------------------------------------------------------------------------

func newBuildingBatchFn(repo buildingRepo) dataloader.BatchFunc[int64, *domain.Building] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Building] {
		buildings, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Building](len(keys), err)
		}

		byID := make(map[int64]*domain.Building, len(buildings))
		for i := range buildings {
			byID[buildings[i].ID] = &buildings[i]
		}

		results := make([]*dataloader.Result[*domain.Building], len(keys))
		for i, key := range keys {
			if b, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.Building]{Data: b}
			} else {
				results[i] = &dataloader.Result[*domain.Building]{
					Error: fmt.Errorf("building %d: %w", key, domain.ErrNotFound),
				}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Phones by CompanyID
// ---------------------------------------------------------------------------

func newPhonesBatchFn(repo phoneRepo) dataloader.BatchFunc[int64, []domain.Phone] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Phone] {
		phones, err := repo.PhonesByCompanyIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Phone](len(keys), err)
		}

		grouped := make(map[int64][]domain.Phone, len(keys))
		for _, p := range phones {
			grouped[p.CompanyID] = append(grouped[p.CompanyID], p)
		}

		return mapResults(keys, grouped, emptySlice[domain.Phone])
	}
}

// ---------------------------------------------------------------------------
// Activities by CompanyID
// ---------------------------------------------------------------------------

func newActivitiesBatchFn(repo activityLinkRepo) dataloader.BatchFunc[int64, []domain.Activity] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Activity] {
		rows, err := repo.ActivitiesByCompanyIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Activity](len(keys), err)
		}

		grouped := make(map[int64][]domain.Activity, len(keys))
		for _, r := range rows {
			grouped[r.CompanyID] = append(grouped[r.CompanyID], r.Activity)
		}

		return mapResults(keys, grouped, emptySlice[domain.Activity])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
