package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// DeleteCard hard-deletes a card. Its votes and comments are not removed.
func (s *Service) DeleteCard(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get card: %w", err)
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventCardDeleted, card.RetrospectiveID, domain.EntityRef{ID: id}))

	s.log.InfoContext(ctx, "card deleted",
		slog.String("retro_id", card.RetrospectiveID),
		slog.String("card_id", id),
	)

	return nil
}
