package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Create adds an activity under an optional parent.
// A parent that does not exist is reported as a missing dependency.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)

	var created *domain.Activity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.ParentID != nil {
			if err := s.requireParent(txCtx, *input.ParentID); err != nil {
				return err
			}
		}

		var createErr error
		created, createErr = s.activities.Create(txCtx, name, input.ParentID)
		if createErr != nil {
			return fmt.Errorf("create activity: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	s.log.InfoContext(ctx, "activity created",
		slog.Int64("activity_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

func (s *Service) requireParent(ctx context.Context, parentID int64) error {
	if _, err := s.activities.GetByID(ctx, parentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewDependencyError("parent activity")
		}
		return fmt.Errorf("get parent activity: %w", err)
	}
	return nil
}
