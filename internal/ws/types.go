package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeCheck     MessageType = "check"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeVerdict   MessageType = "verdict"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Verdict answers a check message.
type Verdict struct {
	Legal bool `json:"legal"`
}

// ErrorPayload carries a failed request back to the client.
type ErrorPayload struct {
	Error string `json:"error"`
}

func NewMessage(t MessageType, v interface{}) (Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: payload}, nil
}
