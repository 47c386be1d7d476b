package card

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

// ToggleVote removes the user's vote on a card if one exists, otherwise adds
// one, then publishes vote-changed with the new tally. The check-then-write
// is not atomic: two concurrent toggles by one user may both insert.
func (s *Service) ToggleVote(ctx context.Context, input ToggleVoteInput) (domain.VoteResult, error) {
	input.UserID = ctxutil.UserNameOr(ctx, input.UserID)
	if err := input.Validate(); err != nil {
		return domain.VoteResult{}, err
	}

	card, err := s.cards.GetByID(ctx, input.CardID)
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("get card: %w", err)
	}

	existing, err := s.votes.Find(ctx, input.CardID, input.UserID)
	switch {
	case err == nil:
		if err := s.votes.Delete(ctx, existing.ID); err != nil {
			return domain.VoteResult{}, fmt.Errorf("remove vote: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		if _, err := s.votes.Create(ctx, domain.Vote{
			ID:     domain.NewID(),
			CardID: input.CardID,
			UserID: input.UserID,
		}); err != nil {
			return domain.VoteResult{}, fmt.Errorf("add vote: %w", err)
		}
	default:
		return domain.VoteResult{}, fmt.Errorf("find vote: %w", err)
	}

	tally, err := s.votes.TallyByCards(ctx, []string{input.CardID}, input.UserID)
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("tally votes: %w", err)
	}
	t := tally[input.CardID]

	result := domain.VoteResult{
		CardID:   input.CardID,
		UserID:   input.UserID,
		Votes:    t.Votes,
		HasVoted: t.HasVoted,
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventVoteChanged, card.RetrospectiveID, result))

	s.log.DebugContext(ctx, "vote toggled",
		slog.String("card_id", input.CardID),
		slog.Bool("has_voted", result.HasVoted),
		slog.Int("votes", result.Votes),
	)

	return result, nil
}
