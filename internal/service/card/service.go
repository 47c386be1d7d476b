package card

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

type cardRepo interface {
	GetByID(ctx context.Context, id string) (domain.Card, error)
	ListByRetro(ctx context.Context, retroID string) ([]domain.Card, error)
	Create(ctx context.Context, card domain.Card) (domain.Card, error)
	Update(ctx context.Context, id string, params domain.CardUpdateParams, detach bool) (domain.Card, error)
	Delete(ctx context.Context, id string) error
}

type voteRepo interface {
	Find(ctx context.Context, cardID, userID string) (domain.Vote, error)
	Create(ctx context.Context, v domain.Vote) (domain.Vote, error)
	Delete(ctx context.Context, id string) error
	TallyByCards(ctx context.Context, cardIDs []string, userID string) (map[string]domain.VoteTally, error)
}

type commentRepo interface {
	GetByID(ctx context.Context, id string) (domain.Comment, error)
	ListByCards(ctx context.Context, cardIDs []string) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type retroRepo interface {
	GetByID(ctx context.Context, id string) (domain.Retrospective, error)
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

const (
	MaxContentLength = 2000
	MaxCommentLength = 1000
	MaxAuthorLength  = 100
)

// Service provides card, vote and comment operations.
type Service struct {
	cards    cardRepo
	votes    voteRepo
	comments commentRepo
	retros   retroRepo
	events   publisher
	log      *slog.Logger
}

// NewService creates a new Card service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	votes voteRepo,
	comments commentRepo,
	retros retroRepo,
	events publisher,
) *Service {
	return &Service{
		cards:    cards,
		votes:    votes,
		comments: comments,
		retros:   retros,
		events:   events,
		log:      log.With("service", "card"),
	}
}
