package models

import "time"

// ChatRole identifies who produced a chat message. The assistant runs
// server-side; the client only relays prompts and renders replies.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "USER"
	ChatRoleAssistant ChatRole = "ASSISTANT"
)

// ChatMessage is one entry in the assistant conversation history.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m ChatMessage) EntityID() string { return m.ID }
