package action

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

type actionRepo interface {
	GetByID(ctx context.Context, id string) (domain.ActionItem, error)
	ListByRetro(ctx context.Context, retroID string) ([]domain.ActionItem, error)
	Create(ctx context.Context, a domain.ActionItem) (domain.ActionItem, error)
	Update(ctx context.Context, id string, params domain.ActionUpdateParams) (domain.ActionItem, error)
	Delete(ctx context.Context, id string) error
}

type cardRepo interface {
	GetByID(ctx context.Context, id string) (domain.Card, error)
}

type retroRepo interface {
	GetByID(ctx context.Context, id string) (domain.Retrospective, error)
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

const (
	MaxTextLength     = 1000
	MaxAssigneeLength = 100
)

// Service provides action item operations.
type Service struct {
	actions actionRepo
	cards   cardRepo
	retros  retroRepo
	events  publisher
	log     *slog.Logger
}

// NewService creates a new Action service.
func NewService(log *slog.Logger, actions actionRepo, cards cardRepo, retros retroRepo, events publisher) *Service {
	return &Service{
		actions: actions,
		cards:   cards,
		retros:  retros,
		events:  events,
		log:     log.With("service", "action"),
	}
}
