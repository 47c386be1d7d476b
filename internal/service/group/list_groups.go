package group

import (
	"context"
	"fmt"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// ListGroups returns the groups of a retrospective with their member card ids.
func (s *Service) ListGroups(ctx context.Context, retroID string) ([]domain.CardGroup, error) {
	if retroID == "" {
		return nil, domain.NewValidationError("retrospectiveId", "required")
	}
	if _, err := s.retros.GetByID(ctx, retroID); err != nil {
		return nil, fmt.Errorf("get retrospective: %w", err)
	}

	groups, err := s.groups.ListByRetro(ctx, retroID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if groups == nil {
		groups = []domain.CardGroup{}
	}
	return groups, nil
}
