package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

// CreateCard posts a card to an existing retrospective and publishes card-added.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (domain.Card, error) {
	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}
	category, _ := domain.ParseCategory(input.Category)

	if _, err := s.retros.GetByID(ctx, input.RetroID); err != nil {
		return domain.Card{}, fmt.Errorf("get retrospective: %w", err)
	}

	card, err := s.cards.Create(ctx, domain.Card{
		ID:              domain.IDOrNew(input.ID),
		RetrospectiveID: input.RetroID,
		Category:        category,
		Content:         strings.TrimSpace(input.Content),
		Author:          ctxutil.UserNameOr(ctx, input.Author),
	})
	if err != nil {
		return domain.Card{}, fmt.Errorf("create card: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventCardAdded, card.RetrospectiveID, card))

	s.log.InfoContext(ctx, "card created",
		slog.String("retro_id", card.RetrospectiveID),
		slog.String("card_id", card.ID),
		slog.String("category", card.Category.String()),
	)

	return card, nil
}
