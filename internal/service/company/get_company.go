package company

import (
	"context"
	"fmt"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Get returns a company by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List returns one page of companies ordered by id.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.Company, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	companies, err := s.companies.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// GetByBuilding returns every company located in the building.
// An unknown building yields an empty list.
func (s *Service) GetByBuilding(ctx context.Context, buildingID int64) ([]domain.Company, error) {
	companies, err := s.companies.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("list companies by building: %w", err)
	}
	return companies, nil
}
