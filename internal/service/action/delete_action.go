package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// DeleteAction removes an action item and publishes action-deleted.
func (s *Service) DeleteAction(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	current, err := s.actions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get action: %w", err)
	}
	if err := s.actions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete action: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventActionDeleted, current.RetrospectiveID, domain.EntityRef{ID: id}))
	s.log.InfoContext(ctx, "action deleted", slog.String("action_id", id))

	return nil
}
