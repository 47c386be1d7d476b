package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

// AddComment attaches a comment to a card and publishes comment-added.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return domain.Comment{}, err
	}

	card, err := s.cards.GetByID(ctx, input.CardID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("get card: %w", err)
	}

	comment, err := s.comments.Create(ctx, domain.Comment{
		ID:      domain.IDOrNew(input.ID),
		CardID:  input.CardID,
		Author:  ctxutil.UserNameOr(ctx, input.Author),
		Content: strings.TrimSpace(input.Content),
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventCommentAdded, card.RetrospectiveID, comment))

	s.log.InfoContext(ctx, "comment added",
		slog.String("card_id", comment.CardID),
		slog.String("comment_id", comment.ID),
	)

	return comment, nil
}

// DeleteComment removes one comment. When the parent card cannot be read
// the comment is still deleted but no event can be routed.
func (s *Service) DeleteComment(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	card, err := s.cards.GetByID(ctx, comment.CardID)
	if err != nil {
		s.log.WarnContext(ctx, "comment deleted but parent card lookup failed, event skipped",
			slog.String("comment_id", id),
			slog.String("card_id", comment.CardID),
			slog.String("error", err.Error()),
		)
	} else {
		s.events.Publish(ctx, domain.NewEvent(domain.EventCommentDeleted, card.RetrospectiveID,
			domain.EntityRef{ID: id, CardID: comment.CardID}))
	}

	s.log.InfoContext(ctx, "comment deleted", slog.String("comment_id", id))

	return nil
}
