package taxonomy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// snapshot returns the current taxonomy. Cache failures are logged and the
// store is used instead. The cache generation is read before the store so a
// write committed during the load keeps the loaded rows out of the cache.
func (s *Service) snapshot(ctx context.Context) (*domain.Taxonomy, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "taxonomy cache read failed", slog.String("error", err.Error()))
	}
	if ok {
		return domain.NewTaxonomy(cached), nil
	}

	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.log.WarnContext(ctx, "taxonomy cache generation read failed", slog.String("error", genErr.Error()))
	}

	activities, err := s.activities.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	if genErr == nil {
		if err := s.cache.Set(ctx, gen, activities); err != nil {
			s.log.WarnContext(ctx, "taxonomy cache write failed", slog.String("error", err.Error()))
		}
	}

	return domain.NewTaxonomy(activities), nil
}

// invalidate drops the cached snapshot after a committed write.
func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.ErrorContext(ctx, "taxonomy cache invalidation failed", slog.String("error", err.Error()))
	}
}
