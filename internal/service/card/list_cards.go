package card

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// ListCards returns every card of a retrospective as seen by viewer: vote
// count, whether viewer has voted, and comments oldest first. Votes and
// comments are loaded concurrently.
func (s *Service) ListCards(ctx context.Context, retroID, viewer string) ([]domain.CardView, error) {
	if retroID == "" {
		return nil, domain.NewValidationError("retrospectiveId", "required")
	}
	if _, err := s.retros.GetByID(ctx, retroID); err != nil {
		return nil, fmt.Errorf("get retrospective: %w", err)
	}

	cards, err := s.cards.ListByRetro(ctx, retroID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if len(cards) == 0 {
		return []domain.CardView{}, nil
	}

	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	var (
		tally    map[string]domain.VoteTally
		comments []domain.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tally, err = s.votes.TallyByCards(gctx, ids, viewer)
		if err != nil {
			return fmt.Errorf("tally votes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByCards(gctx, ids)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCard := make(map[string][]domain.Comment, len(cards))
	for _, c := range comments {
		byCard[c.CardID] = append(byCard[c.CardID], c)
	}

	views := make([]domain.CardView, len(cards))
	for i, c := range cards {
		cc := byCard[c.ID]
		if cc == nil {
			cc = []domain.Comment{}
		}
		t := tally[c.ID]
		views[i] = domain.CardView{
			Card:     c,
			Votes:    t.Votes,
			HasVoted: viewer != "" && t.HasVoted,
			Comments: cc,
		}
	}
	return views, nil
}
