// Package vote implements the Vote repository using PostgreSQL.
package vote

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

const (
	table  = "votes"
	entity = "vote"
)

var columns = []string{"id", "card_id", "user_id", "created_at"}

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Find returns the oldest vote of userID on cardID, or domain.ErrNotFound.
func (r *Repo) Find(ctx context.Context, cardID, userID string) (domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Vote
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"card_id": cardID, "user_id": userID}).
		OrderBy("created_at", "id").
		Limit(1))
	if err != nil {
		return domain.Vote{}, postgres.MapError(err, entity, cardID+"/"+userID)
	}
	return out, nil
}

// Create inserts a vote row.
func (r *Repo) Create(ctx context.Context, v domain.Vote) (domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Vote
	err := postgres.Get(ctx, q, &out, postgres.Builder.
		Insert(table).
		Columns("id", "card_id", "user_id").
		Values(v.ID, v.CardID, v.UserID).
		Suffix(postgres.Returning(columns)))
	if err != nil {
		return domain.Vote{}, postgres.MapError(err, entity, v.ID)
	}
	return out, nil
}

// Delete removes a vote row by id.
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

// TallyByCards returns one tally per card that has at least one vote, keyed
// by card id. HasVoted reports whether userID is among the voters.
func (r *Repo) TallyByCards(ctx context.Context, cardIDs []string, userID string) (map[string]domain.VoteTally, error) {
	out := make(map[string]domain.VoteTally, len(cardIDs))
	if len(cardIDs) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []domain.VoteTally
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select("card_id", "count(*) AS votes").
		Column(sq.Expr("bool_or(user_id = ?) AS has_voted", userID)).
		From(table).
		Where("card_id = ANY(?)", cardIDs).
		GroupBy("card_id"))
	if err != nil {
		return nil, postgres.MapError(err, entity, "tally")
	}

	for _, t := range rows {
		out[t.CardID] = t
	}
	return out, nil
}
