// Package action implements the ActionItem repository using PostgreSQL.
package action

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

const (
	table  = "actions"
	entity = "action"
)

var columns = []string{
	"id", "retrospective_id", "text", "assignee", "completed",
	"card_id", "card_content", "card_category", "created_at",
}

// Repo provides action item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new action repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an action item by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.ActionItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.ActionItem
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return domain.ActionItem{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// ListByRetro returns the action items of a retrospective in creation order.
func (r *Repo) ListByRetro(ctx context.Context, retroID string) ([]domain.ActionItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []domain.ActionItem{}
	err := postgres.Select(ctx, q, &out, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"retrospective_id": retroID}).
		OrderBy("created_at", "id"))
	if err != nil {
		return nil, postgres.MapError(err, entity, "retro:"+retroID)
	}
	return out, nil
}

// Create inserts an action item including its card snapshot columns.
func (r *Repo) Create(ctx context.Context, a domain.ActionItem) (domain.ActionItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var category *string
	if a.CardCategory != nil {
		c := string(*a.CardCategory)
		category = &c
	}

	var out domain.ActionItem
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Insert(table).
		Columns("id", "retrospective_id", "text", "assignee", "completed", "card_id", "card_content", "card_category").
		Values(a.ID, a.RetrospectiveID, a.Text, a.Assignee, a.Completed, a.CardID, a.CardContent, category).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.ActionItem{}, postgres.MapError(err, entity, a.ID)
	}
	return out, nil
}

// Update applies the non-nil fields of params. An empty assignee clears it.
// The card snapshot columns are never touched.
func (r *Repo) Update(ctx context.Context, id string, params domain.ActionUpdateParams) (domain.ActionItem, error) {
	set := map[string]any{}
	if params.Text != nil {
		set["text"] = *params.Text
	}
	if params.Assignee != nil {
		if *params.Assignee == "" {
			set["assignee"] = nil
		} else {
			set["assignee"] = *params.Assignee
		}
	}
	if params.Completed != nil {
		set["completed"] = *params.Completed
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.ActionItem
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.ActionItem{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// Delete hard-deletes an action item.
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
