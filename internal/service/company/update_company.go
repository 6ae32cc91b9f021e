package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Update applies a partial update. Phone and activity lists, when present,
// replace the stored collections entirely; an empty list clears them.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Company, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}

		next := *current
		if input.Name != nil {
			next.Name = domain.NormalizeName(*input.Name)
		}
		if input.BuildingID != nil && *input.BuildingID != current.BuildingID {
			if err := s.requireBuilding(txCtx, *input.BuildingID); err != nil {
				return err
			}
			next.BuildingID = *input.BuildingID
		}

		if next != *current {
			updated, err = s.companies.Update(txCtx, next)
			if err != nil {
				return fmt.Errorf("update company: %w", err)
			}
		} else {
			updated = current
		}

		if input.PhoneNumbers != nil {
			if err := s.replacePhones(txCtx, input.ID, *input.PhoneNumbers); err != nil {
				return err
			}
		}
		if input.ActivityIDs != nil {
			if err := s.replaceActivities(txCtx, input.ID, *input.ActivityIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company updated", slog.Int64("company_id", input.ID))

	return updated, nil
}

func (s *Service) replacePhones(ctx context.Context, companyID int64, numbers []string) error {
	if err := s.companies.DeletePhones(ctx, companyID); err != nil {
		return fmt.Errorf("delete phones: %w", err)
	}
	if err := s.companies.AddPhones(ctx, companyID, normalizePhones(numbers)); err != nil {
		return fmt.Errorf("add phones: %w", err)
	}
	return nil
}

func (s *Service) replaceActivities(ctx context.Context, companyID int64, requested []int64) error {
	activityIDs, err := s.resolveActivities(ctx, requested)
	if err != nil {
		return err
	}
	if err := s.companies.DeleteActivities(ctx, companyID); err != nil {
		return fmt.Errorf("delete activities: %w", err)
	}
	if err := s.companies.AddActivities(ctx, companyID, activityIDs); err != nil {
		return fmt.Errorf("add activities: %w", err)
	}
	return nil
}
