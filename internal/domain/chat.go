package domain

import "time"

// Chat message senders.
const (
	SenderUser  = "user"
	SenderAgent = "agent"
)

// ChatMessage is one transcript entry, persisted across page loads.
type ChatMessage struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
