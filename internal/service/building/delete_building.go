package building

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a building. A building that still hosts companies yields domain.ErrConflict.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.buildings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete building: %w", err)
	}

	s.log.InfoContext(ctx, "building deleted", slog.Int64("building_id", id))
	return nil
}
