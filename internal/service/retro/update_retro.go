package retro

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// UpdateRetro changes name, team or anonymity and notifies the room.
func (s *Service) UpdateRetro(ctx context.Context, input UpdateRetroInput) (domain.Retrospective, error) {
	if err := input.Validate(); err != nil {
		return domain.Retrospective{}, err
	}

	params := domain.RetroUpdateParams{IsAnonymous: input.IsAnonymous}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Team != nil {
		team := strings.TrimSpace(*input.Team)
		params.Team = &team
	}

	r, err := s.retros.Update(ctx, input.RetroID, params)
	if err != nil {
		return domain.Retrospective{}, fmt.Errorf("update retrospective: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventRetroUpdated, r.ID, r))

	s.log.InfoContext(ctx, "retrospective updated", slog.String("retro_id", r.ID))

	return r, nil
}
