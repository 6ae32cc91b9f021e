package taxonomy

import (
	"context"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// ResolveDescendants returns activityID plus its descendants within maxDepth
// levels. An unknown activityID yields an empty set and no error.
func (s *Service) ResolveDescendants(ctx context.Context, activityID int64, maxDepth int) (domain.IDSet, error) {
	if err := validateDepth(maxDepth); err != nil {
		return nil, err
	}

	tax, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return Descendants(tax, activityID, maxDepth), nil
}

// ResolveDescendantsForNameMatch resolves descendants of every activity whose
// name contains pattern (case-insensitive) and returns their union.
func (s *Service) ResolveDescendantsForNameMatch(ctx context.Context, pattern string, maxDepth int) (domain.IDSet, error) {
	if err := validateDepth(maxDepth); err != nil {
		return nil, err
	}

	tax, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return DescendantsForNameMatch(tax, pattern, maxDepth), nil
}
