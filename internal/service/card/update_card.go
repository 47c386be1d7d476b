package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// UpdateCard edits content and/or category. Moving a grouped card to another
// category detaches it from its group, since groups hold one category only.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (domain.Card, error) {
	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	current, err := s.cards.GetByID(ctx, input.CardID)
	if err != nil {
		return domain.Card{}, fmt.Errorf("get card: %w", err)
	}

	var params domain.CardUpdateParams
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		params.Content = &content
	}
	detach := false
	if input.Category != nil {
		category, _ := domain.ParseCategory(*input.Category)
		params.Category = &category
		detach = current.GroupID != nil && category != current.Category
	}

	card, err := s.cards.Update(ctx, input.CardID, params, detach)
	if err != nil {
		return domain.Card{}, fmt.Errorf("update card: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventCardUpdated, card.RetrospectiveID, card))
	if detach {
		s.events.Publish(ctx, domain.NewEvent(domain.EventGroupUpdated, card.RetrospectiveID,
			domain.EntityRef{ID: *current.GroupID, CardID: card.ID}))
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("card_id", card.ID),
		slog.Bool("detached", detach),
	)

	return card, nil
}
