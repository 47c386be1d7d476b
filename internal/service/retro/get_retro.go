package retro

import (
	"context"
	"fmt"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// GetRetro returns a retrospective by id.
func (s *Service) GetRetro(ctx context.Context, id string) (domain.Retrospective, error) {
	if id == "" {
		return domain.Retrospective{}, domain.NewValidationError("id", "required")
	}

	r, err := s.retros.GetByID(ctx, id)
	if err != nil {
		return domain.Retrospective{}, fmt.Errorf("get retrospective: %w", err)
	}
	return r, nil
}

// ListRetros returns retrospectives newest first.
func (s *Service) ListRetros(ctx context.Context, input ListRetrosInput) ([]domain.Retrospective, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.retros.List(ctx, domain.RetroFilter{Team: input.Team, Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("list retrospectives: %w", err)
	}
	return list, nil
}
