package group

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// RenameGroup sets a new title and publishes group-updated.
func (s *Service) RenameGroup(ctx context.Context, id, title string) (domain.CardGroup, error) {
	if id == "" {
		return domain.CardGroup{}, domain.NewValidationError("id", "required")
	}
	if fe := checkTitle(title); fe != nil {
		return domain.CardGroup{}, domain.NewValidationError(fe.Field, fe.Message)
	}

	if err := s.groups.Rename(ctx, id, strings.TrimSpace(title)); err != nil {
		return domain.CardGroup{}, fmt.Errorf("rename group: %w", err)
	}
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("reload group: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGroupUpdated, group.RetrospectiveID, group))
	s.log.InfoContext(ctx, "group renamed", slog.String("group_id", id))

	return group, nil
}

// DeleteGroup ungroups every member card, then removes the group and
// publishes group-deleted. Cards themselves are kept.
func (s *Service) DeleteGroup(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get group: %w", err)
	}

	released, err := s.cards.ClearGroup(ctx, id)
	if err != nil {
		return fmt.Errorf("ungroup cards: %w", err)
	}
	if err := s.groups.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGroupDeleted, group.RetrospectiveID, domain.EntityRef{ID: id}))
	s.log.InfoContext(ctx, "group deleted",
		slog.String("group_id", id),
		slog.Int64("released_cards", released),
	)

	return nil
}
