// Package group implements the CardGroup repository using PostgreSQL.
// Membership is read from cards.group_id; the group row stores no card list.
package group

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

const (
	table  = "card_groups"
	entity = "card_group"
)

var columns = []string{"id", "retrospective_id", "title", "category", "created_at"}

// withMembers selects group columns plus the member card ids aggregated from cards.
var withMembers = []string{
	"g.id", "g.retrospective_id", "g.title", "g.category", "g.created_at",
	"COALESCE(array_agg(c.id ORDER BY c.created_at, c.id) FILTER (WHERE c.id IS NOT NULL), '{}') AS card_ids",
}

type groupRow struct {
	ID              string          `db:"id"`
	RetrospectiveID string          `db:"retrospective_id"`
	Title           string          `db:"title"`
	Category        domain.Category `db:"category"`
	CreatedAt       time.Time       `db:"created_at"`
	CardIDs         []string        `db:"card_ids"`
}

func (g groupRow) toDomain() domain.CardGroup {
	ids := g.CardIDs
	if ids == nil {
		ids = []string{}
	}
	return domain.CardGroup{
		ID:              g.ID,
		RetrospectiveID: g.RetrospectiveID,
		Title:           g.Title,
		Category:        g.Category,
		CardIDs:         ids,
		CreatedAt:       g.CreatedAt,
	}
}

// Repo provides card group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectWithMembers() sq.SelectBuilder {
	return postgres.Builder.
		Select(withMembers...).
		From(table + " g").
		LeftJoin("cards c ON c.group_id = g.id").
		GroupBy("g.id")
}

// GetByID returns a group with its current member card ids.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.CardGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row groupRow
	if err := postgres.Get(ctx, q, &row, r.selectWithMembers().Where(sq.Eq{"g.id": id})); err != nil {
		return domain.CardGroup{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// ListByRetro returns the groups of a retrospective in creation order.
func (r *Repo) ListByRetro(ctx context.Context, retroID string) ([]domain.CardGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []groupRow
	err := postgres.Select(ctx, q, &rows, r.selectWithMembers().
		Where(sq.Eq{"g.retrospective_id": retroID}).
		OrderBy("g.created_at", "g.id"))
	if err != nil {
		return nil, postgres.MapError(err, entity, "retro:"+retroID)
	}

	out := make([]domain.CardGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Create inserts the group row only. Callers attach cards separately.
func (r *Repo) Create(ctx context.Context, g domain.CardGroup) (domain.CardGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row groupRow
	err := postgres.Get(ctx, q, &row, postgres.Builder.
		Insert(table).
		Columns("id", "retrospective_id", "title", "category").
		Values(g.ID, g.RetrospectiveID, g.Title, string(g.Category)).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.CardGroup{}, postgres.MapError(err, entity, g.ID)
	}
	return row.toDomain(), nil
}

// Rename sets a new title.
func (r *Repo) Rename(ctx context.Context, id, title string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		Set("title", title).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// Delete removes the group row. Member cards keep their reference until
// cleared by the caller.
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
