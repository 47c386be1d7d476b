package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRetro inserts a retrospective with a unique team name.
func SeedRetro(t *testing.T, pool *pgxpool.Pool) domain.Retrospective {
	t.Helper()

	suffix := uniqueSuffix()
	r := domain.Retrospective{
		ID:        "retro-" + suffix,
		Name:      "Sprint " + suffix,
		Team:      "Team " + suffix,
		CreatedBy: "seed",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO retrospectives (id, name, team, created_by, is_anonymous)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		r.ID, r.Name, r.Team, r.CreatedBy, r.IsAnonymous,
	).Scan(&r.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRetro: %v", err)
	}
	return r
}

// SeedCard inserts a card in retroID under category.
func SeedCard(t *testing.T, pool *pgxpool.Pool, retroID string, category domain.Category, content string) domain.Card {
	t.Helper()

	c := domain.Card{
		ID:              "card-" + uniqueSuffix(),
		RetrospectiveID: retroID,
		Category:        category,
		Content:         content,
		Author:          "seed",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO cards (id, retrospective_id, category, content, author)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		c.ID, c.RetrospectiveID, string(c.Category), c.Content, c.Author,
	).Scan(&c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return c
}

// SeedVote inserts a vote row for (cardID, userID).
func SeedVote(t *testing.T, pool *pgxpool.Pool, cardID, userID string) domain.Vote {
	t.Helper()

	v := domain.Vote{ID: "vote-" + uniqueSuffix(), CardID: cardID, UserID: userID}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO votes (id, card_id, user_id) VALUES ($1, $2, $3) RETURNING created_at`,
		v.ID, v.CardID, v.UserID,
	).Scan(&v.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedVote: %v", err)
	}
	return v
}

// SeedComment inserts a comment on cardID.
func SeedComment(t *testing.T, pool *pgxpool.Pool, cardID, content string) domain.Comment {
	t.Helper()

	c := domain.Comment{ID: "comment-" + uniqueSuffix(), CardID: cardID, Author: "seed", Content: content}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO comments (id, card_id, author, content) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		c.ID, c.CardID, c.Author, c.Content,
	).Scan(&c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}

// SeedGroup inserts a group and points each of cardIDs at it.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, retroID string, category domain.Category, cardIDs ...string) domain.CardGroup {
	t.Helper()
	ctx := context.Background()

	g := domain.CardGroup{
		ID:              "group-" + uniqueSuffix(),
		RetrospectiveID: retroID,
		Title:           "Group " + uniqueSuffix(),
		Category:        category,
		CardIDs:         cardIDs,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO card_groups (id, retrospective_id, title, category)
		 VALUES ($1, $2, $3, $4) RETURNING created_at`,
		g.ID, g.RetrospectiveID, g.Title, string(g.Category),
	).Scan(&g.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	for _, id := range cardIDs {
		if _, err := pool.Exec(ctx, `UPDATE cards SET group_id = $1 WHERE id = $2`, g.ID, id); err != nil {
			t.Fatalf("testhelper: SeedGroup attach %s: %v", id, err)
		}
	}
	return g
}
