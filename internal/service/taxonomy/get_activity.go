package taxonomy

import (
	"context"
	"fmt"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Get returns an activity by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// FindByName returns the activity with exactly this name.
func (s *Service) FindByName(ctx context.Context, name string) (*domain.Activity, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	a, err := s.activities.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return a, nil
}

// List returns one page of activities ordered by id.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.Activity, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	activities, err := s.activities.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
