package group

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// CreateGroup clusters two or more cards of one category under a title and
// publishes group-added. Cards already in another group are moved.
func (s *Service) CreateGroup(ctx context.Context, input CreateGroupInput) (domain.CardGroup, error) {
	if err := input.Validate(); err != nil {
		return domain.CardGroup{}, err
	}
	ids := input.uniqueCardIDs()

	if _, err := s.retros.GetByID(ctx, input.RetroID); err != nil {
		return domain.CardGroup{}, fmt.Errorf("get retrospective: %w", err)
	}

	cards, err := s.cards.GetByIDs(ctx, ids)
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("get cards: %w", err)
	}
	category, err := commonCategory(input.RetroID, ids, cards)
	if err != nil {
		return domain.CardGroup{}, err
	}

	group, err := s.groups.Create(ctx, domain.CardGroup{
		ID:              domain.IDOrNew(input.ID),
		RetrospectiveID: input.RetroID,
		Title:           strings.TrimSpace(input.Title),
		Category:        category,
	})
	if err != nil {
		return domain.CardGroup{}, fmt.Errorf("create group: %w", err)
	}

	group.CardIDs = make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := s.cards.SetGroup(ctx, id, &group.ID); err != nil {
			s.log.ErrorContext(ctx, "group created with partial membership",
				slog.String("group_id", group.ID),
				slog.String("card_id", id),
				slog.String("error", err.Error()),
			)
			return domain.CardGroup{}, fmt.Errorf("assign card %s: %w", id, err)
		}
		group.CardIDs = append(group.CardIDs, id)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGroupAdded, group.RetrospectiveID, group))

	s.log.InfoContext(ctx, "group created",
		slog.String("retro_id", group.RetrospectiveID),
		slog.String("group_id", group.ID),
		slog.Int("cards", len(group.CardIDs)),
	)

	return group, nil
}

// commonCategory checks that every requested card exists in retroID and that
// they all share one category, which it returns.
func commonCategory(retroID string, ids []string, cards []domain.Card) (domain.Category, error) {
	byID := make(map[string]domain.Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	var category domain.Category
	for _, id := range ids {
		c, ok := byID[id]
		if !ok || c.RetrospectiveID != retroID {
			return "", domain.NewValidationError("cardIds", fmt.Sprintf("card %s not found in retrospective", id))
		}
		if category == "" {
			category = c.Category
			continue
		}
		if c.Category != category {
			return "", domain.NewValidationError("cardIds", "cards must share one category")
		}
	}
	return category, nil
}
