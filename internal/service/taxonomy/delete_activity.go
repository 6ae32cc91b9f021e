package taxonomy

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes an activity. Company links to it are dropped by the store;
// an activity that still has children is rejected with domain.ErrConflict.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.invalidate(ctx)

	s.log.InfoContext(ctx, "activity deleted", slog.Int64("activity_id", id))
	return nil
}
