package retroclient

import (
	"encoding/json"
	"time"
)

// Categories a card can be posted under.
const (
	CategoryHot            = "hot"
	CategoryDisappointment = "disappointment"
	CategoryFantasy        = "fantasy"
)

// Retrospective mirrors the server's retrospective.
type Retrospective struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Team        string    `json:"team"`
	CreatedBy   string    `json:"createdBy"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Card is a card as seen by the requesting user.
type Card struct {
	ID              string    `json:"id"`
	RetrospectiveID string    `json:"retrospectiveId"`
	Category        string    `json:"category"`
	Content         string    `json:"content"`
	Author          string    `json:"author"`
	GroupID         *string   `json:"groupId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	Votes           int       `json:"votes"`
	HasVoted        bool      `json:"hasVoted"`
	Comments        []Comment `json:"comments"`
}

type Comment struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type VoteResult struct {
	CardID   string `json:"cardId"`
	UserID   string `json:"userId"`
	Votes    int    `json:"votes"`
	HasVoted bool   `json:"hasVoted"`
}

type ActionItem struct {
	ID              string    `json:"id"`
	RetrospectiveID string    `json:"retrospectiveId"`
	Text            string    `json:"text"`
	Assignee        *string   `json:"assignee,omitempty"`
	Completed       bool      `json:"completed"`
	CardID          *string   `json:"cardId,omitempty"`
	CardContent     *string   `json:"cardContent,omitempty"`
	CardCategory    *string   `json:"cardCategory,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CardGroup struct {
	ID              string    `json:"id"`
	RetrospectiveID string    `json:"retrospectiveId"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	CardIDs         []string  `json:"cardIds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Token is an issued session token.
type Token struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Event is a change notification received over the realtime channel.
// Data holds the affected entity or its id and is informational only.
type Event struct {
	Type    string          `json:"type"`
	RetroID string          `json:"retroId"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Request bodies. Empty optional fields are omitted so the server applies
// its defaults.

type NewRetro struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	CreatedBy   string `json:"createdBy,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type RetroPatch struct {
	Name        *string `json:"name,omitempty"`
	Team        *string `json:"team,omitempty"`
	IsAnonymous *bool   `json:"isAnonymous,omitempty"`
}

type NewCard struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Author   string `json:"author,omitempty"`
}

type CardPatch struct {
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

type NewAction struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text"`
	Assignee string `json:"assignee,omitempty"`
	CardID   string `json:"cardId,omitempty"`
}

type ActionPatch struct {
	Text      *string `json:"text,omitempty"`
	Assignee  *string `json:"assignee,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type NewGroup struct {
	ID      string   `json:"id,omitempty"`
	Title   string   `json:"title"`
	CardIDs []string `json:"cardIds"`
}
