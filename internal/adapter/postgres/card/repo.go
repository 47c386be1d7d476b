// Package card implements the Card repository using PostgreSQL.
package card

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

const (
	table  = "cards"
	entity = "card"
)

var columns = []string{"id", "retrospective_id", "category", "content", "author", "group_id", "created_at"}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Card
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// GetByIDs returns the cards with the given ids in creation order. Unknown
// ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.Card, error) {
	if len(ids) == 0 {
		return []domain.Card{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []domain.Card{}
	err := postgres.Select(ctx, q, &out, postgres.Builder.
		Select(columns...).
		From(table).
		Where("id = ANY(?)", ids).
		OrderBy("created_at", "id"))
	if err != nil {
		return nil, postgres.MapError(err, entity, "batch")
	}
	return out, nil
}

// ListByRetro returns every card of a retrospective in creation order.
func (r *Repo) ListByRetro(ctx context.Context, retroID string) ([]domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []domain.Card{}
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

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card and returns it with its database timestamp.
func (r *Repo) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Card
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Insert(table).
		Columns("id", "retrospective_id", "category", "content", "author", "group_id").
		Values(card.ID, card.RetrospectiveID, string(card.Category), card.Content, card.Author, card.GroupID).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, entity, card.ID)
	}
	return out, nil
}

// Update applies content and/or category changes. When detach is true the
// card's group reference is cleared in the same statement.
func (r *Repo) Update(ctx context.Context, id string, params domain.CardUpdateParams, detach bool) (domain.Card, error) {
	set := map[string]any{}
	if params.Content != nil {
		set["content"] = *params.Content
	}
	if params.Category != nil {
		set["category"] = string(*params.Category)
	}
	if detach {
		set["group_id"] = nil
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Card
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// SetGroup points a card at groupID, or clears the reference when groupID is nil.
func (r *Repo) SetGroup(ctx context.Context, id string, groupID *string) (domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Card
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Update(table).
		Set("group_id", groupID).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// ClearGroup detaches every card from groupID and returns how many were changed.
func (r *Repo) ClearGroup(ctx context.Context, groupID string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		Set("group_id", nil).
		Where(sq.Eq{"group_id": groupID}))
	if err != nil {
		return 0, postgres.MapError(err, "card_group", groupID)
	}
	return n, nil
}

// Delete hard-deletes a card. Votes and comments are left in place.
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
