// Package orphan removes rows whose logical parent no longer exists. Runtime
// deletes never cascade, so this is an operator task run from cmd/cleanup.
package orphan

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// Statements run in order: retro children first, then card children, so a
// card removed in step one takes its votes and comments with it.
const (
	purgeCardsSQL = `
DELETE FROM cards c
WHERE NOT EXISTS (SELECT 1 FROM retrospectives r WHERE r.id = c.retrospective_id)`

	purgeGroupsSQL = `
DELETE FROM card_groups g
WHERE NOT EXISTS (SELECT 1 FROM retrospectives r WHERE r.id = g.retrospective_id)`

	purgeActionsSQL = `
DELETE FROM actions a
WHERE NOT EXISTS (SELECT 1 FROM retrospectives r WHERE r.id = a.retrospective_id)`

	purgeVotesSQL = `
DELETE FROM votes v
WHERE NOT EXISTS (SELECT 1 FROM cards c WHERE c.id = v.card_id)`

	purgeCommentsSQL = `
DELETE FROM comments m
WHERE NOT EXISTS (SELECT 1 FROM cards c WHERE c.id = m.card_id)`

	clearDanglingGroupsSQL = `
UPDATE cards c SET group_id = NULL
WHERE c.group_id IS NOT NULL
  AND NOT EXISTS (SELECT 1 FROM card_groups g WHERE g.id = c.group_id)`
)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo purges orphaned rows inside one transaction.
type Repo struct {
	db postgres.Querier
	tx txRunner
}

// New creates a new orphan repository.
func New(db postgres.Querier, tx txRunner) *Repo {
	return &Repo{db: db, tx: tx}
}

// Purge deletes orphaned cards, groups, actions, votes and comments and
// clears card references to missing groups. With dryRun the transaction is
// rolled back after counting.
func (r *Repo) Purge(ctx context.Context, dryRun bool) (domain.PurgeResult, error) {
	var res domain.PurgeResult

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		steps := []struct {
			name string
			sql  string
			dst  *int64
		}{
			{"cards", purgeCardsSQL, &res.Cards},
			{"card_groups", purgeGroupsSQL, &res.Groups},
			{"actions", purgeActionsSQL, &res.Actions},
			{"votes", purgeVotesSQL, &res.Votes},
			{"comments", purgeCommentsSQL, &res.Comments},
		}
		for _, s := range steps {
			tag, err := q.Exec(ctx, s.sql)
			if err != nil {
				return fmt.Errorf("purge %s: %w", s.name, err)
			}
			*s.dst = tag.RowsAffected()
		}

		if _, err := q.Exec(ctx, clearDanglingGroupsSQL); err != nil {
			return fmt.Errorf("clear dangling group refs: %w", err)
		}

		if dryRun {
			return errDryRun
		}
		return nil
	})
	if errors.Is(err, errDryRun) {
		return res, nil
	}
	if err != nil {
		return domain.PurgeResult{}, err
	}
	return res, nil
}

var errDryRun = errors.New("dry run")
