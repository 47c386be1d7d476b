package retro

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// DeleteRetro hard-deletes a retrospective. Its cards, groups and actions stay
// in the store until an orphan purge.
func (s *Service) DeleteRetro(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.retros.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete retrospective: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventRetroDeleted, id, domain.EntityRef{ID: id}))

	s.log.InfoContext(ctx, "retrospective deleted", slog.String("retro_id", id))

	return nil
}
