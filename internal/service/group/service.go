package group

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

type groupRepo interface {
	GetByID(ctx context.Context, id string) (domain.CardGroup, error)
	ListByRetro(ctx context.Context, retroID string) ([]domain.CardGroup, error)
	Create(ctx context.Context, g domain.CardGroup) (domain.CardGroup, error)
	Rename(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
}

type cardRepo interface {
	GetByID(ctx context.Context, id string) (domain.Card, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Card, error)
	SetGroup(ctx context.Context, id string, groupID *string) (domain.Card, error)
	ClearGroup(ctx context.Context, groupID string) (int64, error)
}

type retroRepo interface {
	GetByID(ctx context.Context, id string) (domain.Retrospective, error)
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

const (
	MaxTitleLength  = 200
	MinGroupSize    = 2
	MaxGroupMembers = 100
)

// Service provides card grouping operations. Multi-row changes are applied
// as independent writes; a failure part way leaves earlier writes in place.
type Service struct {
	groups groupRepo
	cards  cardRepo
	retros retroRepo
	events publisher
	log    *slog.Logger
}

// NewService creates a new Group service.
func NewService(log *slog.Logger, groups groupRepo, cards cardRepo, retros retroRepo, events publisher) *Service {
	return &Service{
		groups: groups,
		cards:  cards,
		retros: retros,
		events: events,
		log:    log.With("service", "group"),
	}
}
