package building

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Update applies a partial update to a building.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Building, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Building
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.buildings.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get building: %w", err)
		}

		next := *current
		if input.Address != nil {
			next.Address = domain.NormalizeName(*input.Address)
		}
		if input.Latitude != nil {
			next.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			next.Longitude = *input.Longitude
		}

		updated, err = s.buildings.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update building: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "building updated", slog.Int64("building_id", input.ID))

	return updated, nil
}
