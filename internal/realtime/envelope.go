// Package realtime fans change notifications out to subscribers grouped in
// rooms keyed by retrospective id. Delivery is best effort: no ordering
// across rooms, no replay, no presence.
package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// Envelope is an encoded event addressed to one room.
type Envelope struct {
	Room    string          `json:"room"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Encode wraps e for transport. The room is the event's retrospective id.
func Encode(e domain.Event) (Envelope, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s event: %w", e.Type, err)
	}
	return Envelope{Room: e.RetroID, Type: string(e.Type), Payload: payload}, nil
}

// Stripped returns a copy whose payload carries only type and retroId.
// Receivers re-fetch on any notification, so the data is optional.
func (env Envelope) Stripped() Envelope {
	payload, _ := json.Marshal(domain.Event{Type: domain.EventType(env.Type), RetroID: env.Room})
	env.Payload = payload
	return env
}

// ClientMessage is a control frame sent by a WebSocket client.
type ClientMessage struct {
	Type    string `json:"type"`
	RetroID string `json:"retroId"`
}

// Control frame types.
const (
	MsgJoin   = "join"
	MsgLeave  = "leave"
	MsgJoined = "joined"
	MsgLeft   = "left"
	MsgError  = "error"
)

func controlFrame(typ, retroID string) []byte {
	b, _ := json.Marshal(ClientMessage{Type: typ, RetroID: retroID})
	return b
}

// decodeEvent rebuilds an envelope from a relayed event payload.
func decodeEvent(room string, payload []byte) (Envelope, error) {
	var head struct {
		Type    string `json:"type"`
		RetroID string `json:"retroId"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return Envelope{}, fmt.Errorf("decode event: %w", err)
	}
	if room == "" {
		room = head.RetroID
	}
	if room == "" || head.Type == "" {
		return Envelope{}, fmt.Errorf("decode event: missing room or type")
	}
	return Envelope{Room: room, Type: head.Type, Payload: json.RawMessage(payload)}, nil
}
