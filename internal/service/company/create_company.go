package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// Create persists a company with its phones and activity links in one
// transaction. The building must exist. When activity ids are given at least
// one must exist; unknown ids among known ones are dropped.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Company, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)
	phones := normalizePhones(input.PhoneNumbers)

	var created *domain.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireBuilding(txCtx, input.BuildingID); err != nil {
			return err
		}

		activityIDs, err := s.resolveActivities(txCtx, input.ActivityIDs)
		if err != nil {
			return err
		}

		created, err = s.companies.Create(txCtx, name, input.BuildingID)
		if err != nil {
			return fmt.Errorf("create company: %w", err)
		}
		if err := s.companies.AddPhones(txCtx, created.ID, phones); err != nil {
			return fmt.Errorf("add phones: %w", err)
		}
		if err := s.companies.AddActivities(txCtx, created.ID, activityIDs); err != nil {
			return fmt.Errorf("add activities: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company created",
		slog.Int64("company_id", created.ID),
		slog.Int64("building_id", created.BuildingID),
		slog.Int("phones", len(phones)),
	)

	return created, nil
}

func (s *Service) requireBuilding(ctx context.Context, buildingID int64) error {
	ok, err := s.buildings.Exists(ctx, buildingID)
	if err != nil {
		return fmt.Errorf("check building: %w", err)
	}
	if !ok {
		return domain.NewDependencyError("building")
	}
	return nil
}

// resolveActivities returns the requested ids that exist, deduplicated and in
// request order. An empty request resolves to nothing; a non-empty request
// with no known id fails with a dependency error.
func (s *Service) resolveActivities(ctx context.Context, requested []int64) ([]int64, error) {
	if len(requested) == 0 {
		return nil, nil
	}

	unique := domain.NewIDSet(requested...)
	found, err := s.activities.GetByIDs(ctx, unique.Slice())
	if err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}
	if len(found) == 0 {
		return nil, domain.NewDependencyError("activities")
	}

	known := domain.NewIDSet()
	for _, a := range found {
		known.Add(a.ID)
	}

	out := make([]int64, 0, len(found))
	seen := domain.NewIDSet()
	for _, id := range requested {
		if known.Has(id) && !seen.Has(id) {
			seen.Add(id)
			out = append(out, id)
		}
	}
	return out, nil
}

func normalizePhones(numbers []string) []string {
	out := make([]string, len(numbers))
	for i, n := range numbers {
		out[i] = domain.NormalizePhone(n)
	}
	return out
}
