package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxIDLength bounds client-supplied identifiers.
const MaxIDLength = 64

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// IDOrNew returns id when set, otherwise a fresh identifier.
func IDOrNew(id string) string {
	if id == "" {
		return NewID()
	}
	return id
}

// Retrospective is the root aggregate: a named feedback session for one team.
type Retrospective struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Team        string    `json:"team"`
	CreatedBy   string    `json:"createdBy"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RetroFilter narrows ListRetros.
type RetroFilter struct {
	Team  string
	Limit int
}

// RetroUpdateParams is a partial update; nil fields are left unchanged.
type RetroUpdateParams struct {
	Name        *string
	Team        *string
	IsAnonymous *bool
}

// Card is one piece of feedback. GroupID references a CardGroup of the same
// retrospective; membership lives only on the card.
type Card struct {
	ID              string    `json:"id"`
	RetrospectiveID string    `json:"retrospectiveId"`
	Category        Category  `json:"category"`
	Content         string    `json:"content"`
	Author          string    `json:"author"`
	GroupID         *string   `json:"groupId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CardUpdateParams is a partial update; nil fields are left unchanged.
type CardUpdateParams struct {
	Content  *string
	Category *Category
}

// CardView is a card as presented to one viewer: vote tally, whether the
// viewer has voted, and its comments in creation order.
type CardView struct {
	Card
	Votes    int       `json:"votes"`
	HasVoted bool      `json:"hasVoted"`
	Comments []Comment `json:"comments"`
}

// Vote records that UserID voted for CardID.
type Vote struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteTally is the vote count of one card and whether a given user is among
// the voters.
type VoteTally struct {
	CardID   string `db:"card_id"`
	Votes    int    `db:"votes"`
	HasVoted bool   `db:"has_voted"`
}

// VoteResult is the outcome of a vote toggle.
type VoteResult struct {
	CardID   string `json:"cardId"`
	UserID   string `json:"userId"`
	Votes    int    `json:"votes"`
	HasVoted bool   `json:"hasVoted"`
}

// Comment is a remark attached to a card.
type Comment struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActionItem is a follow-up task. When linked to a card, CardContent and
// CardCategory hold a snapshot taken at creation and never track later edits.
type ActionItem struct {
	ID              string    `json:"id"`
	RetrospectiveID string    `json:"retrospectiveId"`
	Text            string    `json:"text"`
	Assignee        *string   `json:"assignee,omitempty"`
	Completed       bool      `json:"completed"`
	CardID          *string   `json:"cardId,omitempty"`
	CardContent     *string   `json:"cardContent,omitempty"`
	CardCategory    *Category `json:"cardCategory,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ActionUpdateParams is a partial update; nil fields are left unchanged.
type ActionUpdateParams struct {
	Text      *string
	Assignee  *string // ptr("") clears
	Completed *bool
}

// CardGroup clusters same-category cards under one title. CardIDs is
// derived from the cards' group reference and is not stored on the group.
type CardGroup struct {
	ID              string    `json:"id"`
	RetrospectiveID string    `json:"retrospectiveId"`
	Title           string    `json:"title"`
	Category        Category  `json:"category"`
	CardIDs         []string  `json:"cardIds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PurgeResult counts rows removed by an orphan purge.
type PurgeResult struct {
	Cards    int64
	Votes    int64
	Comments int64
	Actions  int64
	Groups   int64
}

// Total returns the number of rows removed across all tables.
func (r PurgeResult) Total() int64 {
	return r.Cards + r.Votes + r.Comments + r.Actions + r.Groups
}
