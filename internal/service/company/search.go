package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// GetByActivity returns companies linked to the activity or to any of its
// descendants within the configured depth. An unknown activity is reported
// as domain.ErrNotFound.
func (s *Service) GetByActivity(ctx context.Context, activityID int64) ([]domain.Company, error) {
	ids, err := s.taxonomy.ResolveDescendants(ctx, activityID, s.maxDepth)
	if err != nil {
		return nil, fmt.Errorf("resolve activity %d: %w", activityID, err)
	}
	if ids.Len() == 0 {
		return nil, fmt.Errorf("activity %d: %w", activityID, domain.ErrNotFound)
	}

	return s.byActivities(ctx, ids)
}

// SearchByName returns companies whose name contains substring, ignoring case.
func (s *Service) SearchByName(ctx context.Context, substring string) ([]domain.Company, error) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	companies, err := s.companies.SearchByName(ctx, substring)
	if err != nil {
		return nil, fmt.Errorf("search companies by name: %w", err)
	}
	return companies, nil
}

// SearchByActivityName returns companies linked to any activity whose name
// contains substring, or to a descendant of one. No matching activity yields
// an empty list.
func (s *Service) SearchByActivityName(ctx context.Context, substring string) ([]domain.Company, error) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return nil, domain.NewValidationError("activity_name", "required")
	}

	ids, err := s.taxonomy.ResolveDescendantsForNameMatch(ctx, substring, s.maxDepth)
	if err != nil {
		return nil, fmt.Errorf("resolve activity name %q: %w", substring, err)
	}
	if ids.Len() == 0 {
		return []domain.Company{}, nil
	}

	return s.byActivities(ctx, ids)
}

func (s *Service) byActivities(ctx context.Context, ids domain.IDSet) ([]domain.Company, error) {
	companies, err := s.companies.ListByActivityIDs(ctx, ids.Slice())
	if err != nil {
		return nil, fmt.Errorf("list companies by activities: %w", err)
	}
	return companies, nil
}
