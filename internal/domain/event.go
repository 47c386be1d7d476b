package domain

// Event is a change notification for one retrospective. Data carries the
// affected entity or an EntityRef, never a full board snapshot.
type Event struct {
	Type    EventType `json:"type"`
	RetroID string    `json:"retroId"`
	Data    any       `json:"data,omitempty"`
}

// EntityRef identifies a removed entity.
type EntityRef struct {
	ID     string `json:"id"`
	CardID string `json:"cardId,omitempty"`
}

// NewEvent builds an Event.
func NewEvent(t EventType, retroID string, data any) Event {
	return Event{Type: t, RetroID: retroID, Data: data}
}
