package domain

import "strings"

// Category is the column a card is posted under.
type Category string

const (
	CategoryHot            Category = "hot"            // went well
	CategoryDisappointment Category = "disappointment" // went poorly
	CategoryFantasy        Category = "fantasy"        // improvement idea
)

// Categories lists every valid category in board order.
var Categories = []Category{CategoryHot, CategoryDisappointment, CategoryFantasy}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryHot, CategoryDisappointment, CategoryFantasy:
		return true
	}
	return false
}

// ParseCategory normalizes s (trim, lower case) and reports whether it names a category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// EventType names a change notification published to a retrospective topic.
type EventType string

const (
	EventCardAdded      EventType = "card-added"
	EventCardUpdated    EventType = "card-updated"
	EventCardDeleted    EventType = "card-deleted"
	EventVoteChanged    EventType = "vote-changed"
	EventCommentAdded   EventType = "comment-added"
	EventCommentDeleted EventType = "comment-deleted"
	EventActionAdded    EventType = "action-added"
	EventActionUpdated  EventType = "action-updated"
	EventActionDeleted  EventType = "action-deleted"
	EventGroupAdded     EventType = "group-added"
	EventGroupUpdated   EventType = "group-updated"
	EventGroupDeleted   EventType = "group-deleted"
	EventRetroUpdated   EventType = "retro-updated"
	EventRetroDeleted   EventType = "retro-deleted"
)

func (t EventType) String() string { return string(t) }

// AffectsCards reports whether receivers should re-fetch the card collection.
func (t EventType) AffectsCards() bool {
	switch t {
	case EventCardAdded, EventCardUpdated, EventCardDeleted,
		EventVoteChanged, EventCommentAdded, EventCommentDeleted:
		return true
	}
	return false
}
