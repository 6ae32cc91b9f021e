package taxonomy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Update renames and/or re-parents an activity. Moving an activity below one
// of its own descendants is rejected so the taxonomy stays a forest.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Activity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.activities.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get activity: %w", err)
		}

		next := *current
		if input.Name != nil {
			next.Name = domain.NormalizeName(*input.Name)
		}
		if input.SetParent {
			if input.ParentID != nil {
				if err := s.checkReparent(txCtx, input.ID, *input.ParentID); err != nil {
					return err
				}
			}
			next.ParentID = input.ParentID
		}

		updated, err = s.activities.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	s.log.InfoContext(ctx, "activity updated", slog.Int64("activity_id", input.ID))

	return updated, nil
}

// checkReparent verifies that parentID exists and is not a descendant of id.
// It reads the store directly: the cached snapshot may lag behind the transaction.
func (s *Service) checkReparent(ctx context.Context, id, parentID int64) error {
	all, err := s.activities.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load taxonomy: %w", err)
	}

	tax := domain.NewTaxonomy(all)
	if _, ok := tax.Get(parentID); !ok {
		return domain.NewDependencyError("parent activity")
	}
	if tax.IsAncestor(id, parentID) {
		return domain.NewValidationError("parent_id", "would create a cycle")
	}
	return nil
}
