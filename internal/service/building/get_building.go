package building

import (
	"context"
	"fmt"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Get returns a building by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Building, error) {
	b, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get building: %w", err)
	}
	return b, nil
}

// GetByAddress returns the building with exactly this address.
func (s *Service) GetByAddress(ctx context.Context, address string) (*domain.Building, error) {
	address = domain.NormalizeName(address)
	if address == "" {
		return nil, domain.NewValidationError("address", "required")
	}

	b, err := s.buildings.GetByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get building by address: %w", err)
	}
	return b, nil
}

// List returns one page of buildings ordered by id.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.Building, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	buildings, err := s.buildings.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	return buildings, nil
}

// ListAll returns every building ordered by id.
func (s *Service) ListAll(ctx context.Context) ([]domain.Building, error) {
	buildings, err := s.buildings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all buildings: %w", err)
	}
	return buildings, nil
}
