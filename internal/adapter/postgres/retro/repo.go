// Package retro implements the Retrospective repository using PostgreSQL.
package retro

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

const (
	table        = "retrospectives"
	entity       = "retrospective"
	defaultLimit = 100
)

var columns = []string{"id", "name", "team", "created_by", "is_anonymous", "created_at"}

// Repo provides retrospective persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new retrospective repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a retrospective. CreatedAt is assigned by the database.
func (r *Repo) Create(ctx context.Context, retro domain.Retrospective) (domain.Retrospective, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(table).
		Columns("id", "name", "team", "created_by", "is_anonymous").
		Values(retro.ID, retro.Name, retro.Team, retro.CreatedBy, retro.IsAnonymous).
		Suffix(postgres.Returning(columns))

	var out domain.Retrospective
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return domain.Retrospective{}, postgres.MapError(err, entity, retro.ID)
	}
	return out, nil
}

// GetByID returns a retrospective by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Retrospective, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	var out domain.Retrospective
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return domain.Retrospective{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// List returns retrospectives newest first, optionally narrowed to one team.
func (r *Repo) List(ctx context.Context, filter domain.RetroFilter) ([]domain.Retrospective, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))
	if filter.Team != "" {
		query = query.Where(sq.Eq{"team": filter.Team})
	}

	out := []domain.Retrospective{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	return out, nil
}

// Update applies the non-nil fields of params and returns the updated row.
// An empty update returns the current row.
func (r *Repo) Update(ctx context.Context, id string, params domain.RetroUpdateParams) (domain.Retrospective, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Team != nil {
		set["team"] = *params.Team
	}
	if params.IsAnonymous != nil {
		set["is_anonymous"] = *params.IsAnonymous
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns))

	var out domain.Retrospective
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return domain.Retrospective{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// Delete hard-deletes a retrospective. Cards and actions are left in place.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}
