package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// AddCard attaches a card of the group's category and retrospective, moving
// it out of any previous group. Publishes group-updated.
func (s *Service) AddCard(ctx context.Context, input MembershipInput) (domain.CardGroup, error) {
	if err := input.Validate(); err != nil {
		return domain.CardGroup{}, err
	}

	group, err := s.groups.GetByID(ctx, input.GroupID)
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("get group: %w", err)
	}
	card, err := s.cards.GetByID(ctx, input.CardID)
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("get card: %w", err)
	}

	if card.RetrospectiveID != group.RetrospectiveID {
		return domain.CardGroup{}, domain.NewValidationError("cardId", "card belongs to another retrospective")
	}
	if card.Category != group.Category {
		return domain.CardGroup{}, domain.NewValidationError("cardId", "card category does not match group")
	}
	if card.GroupID != nil && *card.GroupID == group.ID {
		return group, nil
	}

	if _, err := s.cards.SetGroup(ctx, card.ID, &group.ID); err != nil {
		return domain.CardGroup{}, fmt.Errorf("assign card: %w", err)
	}

	updated, err := s.groups.GetByID(ctx, group.ID)
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("reload group: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGroupUpdated, updated.RetrospectiveID, updated))
	s.log.InfoContext(ctx, "card added to group",
		slog.String("group_id", group.ID),
		slog.String("card_id", card.ID),
	)

	return updated, nil
}

// RemoveCard detaches a member card. The group stays even if it becomes
// empty or single-membered. Publishes group-updated.
func (s *Service) RemoveCard(ctx context.Context, input MembershipInput) (domain.CardGroup, error) {
	if err := input.Validate(); err != nil {
		return domain.CardGroup{}, err
	}

	card, err := s.cards.GetByID(ctx, input.CardID)
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("get card: %w", err)
	}
	if card.GroupID == nil || *card.GroupID != input.GroupID {
		return domain.CardGroup{}, fmt.Errorf("card %s in group %s: %w", input.CardID, input.GroupID, domain.ErrNotFound)
	}

	if _, err := s.cards.SetGroup(ctx, card.ID, nil); err != nil {
		return domain.CardGroup{}, fmt.Errorf("detach card: %w", err)
	}

	group, err := s.groups.GetByID(ctx, input.GroupID)
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("reload group: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGroupUpdated, group.RetrospectiveID, group))
	s.log.InfoContext(ctx, "card removed from group",
		slog.String("group_id", group.ID),
		slog.String("card_id", card.ID),
	)

	return group, nil
}
