package company

import (
	"context"
	"fmt"

	"github.com/heartmarshall/company-directory/internal/domain"
	"github.com/heartmarshall/company-directory/internal/geo"
)

// GetInRadius returns companies whose building lies within the radius.
// Results follow building order, then company order within a building.
func (s *Service) GetInRadius(ctx context.Context, q RadiusQuery) ([]domain.Company, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	buildings, err := s.buildings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}

	matched := geo.FindWithinRadius(buildings, q.Latitude, q.Longitude, q.RadiusKm)
	return s.inBuildings(ctx, matched)
}

// GetInRectangle returns companies whose building lies inside the box, in
// the same order as GetInRadius.
func (s *Service) GetInRectangle(ctx context.Context, q RectangleQuery) ([]domain.Company, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	buildings, err := s.buildings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}

	matched := geo.FindWithinRectangle(buildings, q.LatMin, q.LatMax, q.LngMin, q.LngMax)
	return s.inBuildings(ctx, matched)
}

// inBuildings loads the companies of buildings with one query and flattens
// them in building order.
func (s *Service) inBuildings(ctx context.Context, buildings []domain.Building) ([]domain.Company, error) {
	if len(buildings) == 0 {
		return []domain.Company{}, nil
	}

	ids := make([]int64, len(buildings))
	for i, b := range buildings {
		ids[i] = b.ID
	}

	companies, err := s.companies.ListByBuildingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list companies by buildings: %w", err)
	}

	byBuilding := make(map[int64][]domain.Company, len(buildings))
	for _, c := range companies {
		byBuilding[c.BuildingID] = append(byBuilding[c.BuildingID], c)
	}

	out := make([]domain.Company, 0, len(companies))
	for _, id := range ids {
		out = append(out, byBuilding[id]...)
	}
	return out, nil
}
