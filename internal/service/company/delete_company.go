package company

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a company together with its phones and activity links.
// Linked activities are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.companies.DeletePhones(txCtx, id); err != nil {
			return fmt.Errorf("delete phones: %w", err)
		}
		if err := s.companies.DeleteActivities(txCtx, id); err != nil {
			return fmt.Errorf("delete activities: %w", err)
		}
		if err := s.companies.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete company: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "company deleted", slog.Int64("company_id", id))
	return nil
}
