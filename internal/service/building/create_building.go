package building

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Create adds a building. Addresses are unique.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Building, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.buildings.Create(ctx, domain.Building{
		Address:   domain.NormalizeName(input.Address),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("create building: %w", err)
	}

	s.log.InfoContext(ctx, "building created",
		slog.Int64("building_id", created.ID),
		slog.String("address", created.Address),
	)

	return created, nil
}
