package protocol

import (
	"encoding/json"
	"fmt"

	"scopa-game/internal/shared"
)

// Message types emitted while a hand is played.
const (
	TypeDeal    = "deal"
	TypePlay    = "play"
	TypeHandEnd = "hand_end"
)

// Message is the envelope every event is wrapped in.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "deal", "play")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, decoded according to Type
}

// Cards are encoded as their two-glyph text form, e.g. "♥K".

type HandInfo struct {
	Team   int           `json:"team"`
	Player int           `json:"player"`
	Cards  []shared.Card `json:"cards"`
}

type DealPayload struct {
	GameID string        `json:"game_id"`
	Board  []shared.Card `json:"board"`
	Hands  []HandInfo    `json:"hands"`
}

type PlayPayload struct {
	Team     int           `json:"team"`
	Player   int           `json:"player"`
	Card     shared.Card   `json:"card"`
	Rule     string        `json:"rule"`
	Captured []shared.Card `json:"captured,omitempty"`
	Scopa    bool          `json:"scopa,omitempty"`
	Board    []shared.Card `json:"board"`
}

type TeamResult struct {
	TeamNumber int `json:"team_number"`
	Captured   int `json:"captured"`
	Scopas     int `json:"scopas"`
	Score      int `json:"score"`
}

type HandEndPayload struct {
	GameID string        `json:"game_id"`
	Board  []shared.Card `json:"board"` // Cards left on the board
	Teams  []TeamResult  `json:"teams"`
}

// NewMessage wraps payload in a Message of the given type and encodes it.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}

// Decode reads a Message and, when payload is not nil, unmarshals its payload into it.
// It returns the message type.
func Decode(data []byte, payload interface{}) (string, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return "", fmt.Errorf("decode message: %w", err)
	}
	if payload != nil && len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, payload); err != nil {
			return msg.Type, fmt.Errorf("decode %s payload: %w", msg.Type, err)
		}
	}
	return msg.Type, nil
}
