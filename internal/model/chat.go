package model

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Agent is one persona of the AI team. The catalogue is static.
type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Description  string   `json:"description"`
	Specialties  []string `json:"specialties"`
	SystemPrompt string   `json:"-"`
}

type Conversation struct {
	ID            int64     `json:"id,string"`
	UserID        int64     `json:"user_id,string"`
	AgentID       string    `json:"agent_id"`
	Title         string    `json:"title"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID               int64     `json:"id,string"`
	ConversationID   int64     `json:"conversation_id,string"`
	Role             ChatRole  `json:"role"`
	Content          string    `json:"content"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	CreatedAt        time.Time `json:"created_at"`
}
