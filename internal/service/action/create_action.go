package action

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// CreateAction adds an action item and publishes action-added. When CardID
// is set, the card's current content and category are copied into the item;
// later card edits do not change the copy.
func (s *Service) CreateAction(ctx context.Context, input CreateActionInput) (domain.ActionItem, error) {
	if err := input.Validate(); err != nil {
		return domain.ActionItem{}, err
	}

	if _, err := s.retros.GetByID(ctx, input.RetroID); err != nil {
		return domain.ActionItem{}, fmt.Errorf("get retrospective: %w", err)
	}

	item := domain.ActionItem{
		ID:              domain.IDOrNew(input.ID),
		RetrospectiveID: input.RetroID,
		Text:            strings.TrimSpace(input.Text),
	}
	if a := strings.TrimSpace(input.Assignee); a != "" {
		item.Assignee = &a
	}

	if input.CardID != "" {
		card, err := s.cards.GetByID(ctx, input.CardID)
		if err != nil {
			return domain.ActionItem{}, fmt.Errorf("get card: %w", err)
		}
		if card.RetrospectiveID != input.RetroID {
			return domain.ActionItem{}, domain.NewValidationError("cardId", "card belongs to another retrospective")
		}
		content, category := card.Content, card.Category
		item.CardID = &card.ID
		item.CardContent = &content
		item.CardCategory = &category
	}

	created, err := s.actions.Create(ctx, item)
	if err != nil {
		return domain.ActionItem{}, fmt.Errorf("create action: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventActionAdded, created.RetrospectiveID, created))

	s.log.InfoContext(ctx, "action created",
		slog.String("retro_id", created.RetrospectiveID),
		slog.String("action_id", created.ID),
		slog.Bool("linked", created.CardID != nil),
	)

	return created, nil
}
