package taxonomy

import (
	"context"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// BuildTree returns the activity forest limited to maxDepth levels.
// An empty store yields an empty forest.
func (s *Service) BuildTree(ctx context.Context, maxDepth int) ([]domain.ActivityNode, error) {
	if err := validateDepth(maxDepth); err != nil {
		return nil, err
	}

	tax, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return Tree(tax, maxDepth), nil
}

func validateDepth(maxDepth int) error {
	if maxDepth < 0 {
		return domain.NewValidationError("max_depth", "must be >= 0")
	}
	return nil
}
