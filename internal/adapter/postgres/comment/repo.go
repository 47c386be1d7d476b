// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

const (
	table  = "comments"
	entity = "comment"
)

var columns = []string{"id", "card_id", "author", "content", "created_at"}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Comment
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// ListByCards returns the comments of the given cards ordered by creation time.
func (r *Repo) ListByCards(ctx context.Context, cardIDs []string) ([]domain.Comment, error) {
	if len(cardIDs) == 0 {
		return []domain.Comment{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []domain.Comment{}
	err := postgres.Select(ctx, q, &out, postgres.Builder.
		Select(columns...).
		From(table).
		Where("card_id = ANY(?)", cardIDs).
		OrderBy("created_at", "id"))
	if err != nil {
		return nil, postgres.MapError(err, entity, "batch")
	}
	return out, nil
}

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Comment
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Insert(table).
		Columns("id", "card_id", "author", "content").
		Values(c.ID, c.CardID, c.Author, c.Content).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, entity, c.ID)
	}
	return out, nil
}

// Delete removes exactly one comment.
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
