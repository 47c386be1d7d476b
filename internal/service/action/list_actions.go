package action

import (
	"context"
	"fmt"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// ListActions returns the action items of a retrospective, oldest first.
func (s *Service) ListActions(ctx context.Context, retroID string) ([]domain.ActionItem, error) {
	if retroID == "" {
		return nil, domain.NewValidationError("retrospectiveId", "required")
	}
	if _, err := s.retros.GetByID(ctx, retroID); err != nil {
		return nil, fmt.Errorf("get retrospective: %w", err)
	}

	actions, err := s.actions.ListByRetro(ctx, retroID)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	if actions == nil {
		actions = []domain.ActionItem{}
	}
	return actions, nil
}
