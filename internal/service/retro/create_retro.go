package retro

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

// CreateRetro creates a retrospective. The creator defaults to the session user.
func (s *Service) CreateRetro(ctx context.Context, input CreateRetroInput) (domain.Retrospective, error) {
	if err := input.Validate(); err != nil {
		return domain.Retrospective{}, err
	}

	r, err := s.retros.Create(ctx, domain.Retrospective{
		ID:          domain.IDOrNew(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Team:        strings.TrimSpace(input.Team),
		CreatedBy:   ctxutil.UserNameOr(ctx, input.CreatedBy),
		IsAnonymous: input.IsAnonymous,
	})
	if err != nil {
		return domain.Retrospective{}, fmt.Errorf("create retrospective: %w", err)
	}

	s.log.InfoContext(ctx, "retrospective created",
		slog.String("retro_id", r.ID),
		slog.String("team", r.Team),
	)

	return r, nil
}
