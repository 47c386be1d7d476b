package retro

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

type retroRepo interface {
	Create(ctx context.Context, r domain.Retrospective) (domain.Retrospective, error)
	GetByID(ctx context.Context, id string) (domain.Retrospective, error)
	List(ctx context.Context, filter domain.RetroFilter) ([]domain.Retrospective, error)
	Update(ctx context.Context, id string, params domain.RetroUpdateParams) (domain.Retrospective, error)
	Delete(ctx context.Context, id string) error
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

const (
	MaxNameLength = 200
	MaxTeamLength = 100
	MaxListLimit  = 200
)

// Service provides retrospective management operations.
type Service struct {
	retros retroRepo
	events publisher
	log    *slog.Logger
}

// NewService creates a new Retro service.
func NewService(log *slog.Logger, retros retroRepo, events publisher) *Service {
	return &Service{
		retros: retros,
		events: events,
		log:    log.With("service", "retro"),
	}
}
