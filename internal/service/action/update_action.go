package action

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// UpdateAction edits text, assignee or completion and publishes action-updated.
// The card snapshot is never modified.
func (s *Service) UpdateAction(ctx context.Context, input UpdateActionInput) (domain.ActionItem, error) {
	if err := input.Validate(); err != nil {
		return domain.ActionItem{}, err
	}

	params := domain.ActionUpdateParams{Completed: input.Completed}
	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		params.Text = &text
	}
	if input.Assignee != nil {
		assignee := strings.TrimSpace(*input.Assignee)
		params.Assignee = &assignee
	}

	updated, err := s.actions.Update(ctx, input.ActionID, params)
	if err != nil {
		return domain.ActionItem{}, fmt.Errorf("update action: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventActionUpdated, updated.RetrospectiveID, updated))

	s.log.InfoContext(ctx, "action updated",
		slog.String("action_id", updated.ID),
		slog.Bool("completed", updated.Completed),
	)

	return updated, nil
}

// ToggleAction flips the completed flag.
func (s *Service) ToggleAction(ctx context.Context, id string) (domain.ActionItem, error) {
	if id == "" {
		return domain.ActionItem{}, domain.NewValidationError("id", "required")
	}

	current, err := s.actions.GetByID(ctx, id)
	if err != nil {
		return domain.ActionItem{}, fmt.Errorf("get action: %w", err)
	}

	completed := !current.Completed
	return s.UpdateAction(ctx, UpdateActionInput{ActionID: id, Completed: &completed})
}
