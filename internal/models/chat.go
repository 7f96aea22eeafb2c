// ABOUTME: Chat message models for outbound completion requests
// ABOUTME: Defines ChatMessage, its roles, and per-call CompletionOptions
package models

// Role tags who authored a chat message
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// ChatMessage is a single role-tagged message sent to the completion API
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions carries optional per-call overrides.
// Zero values leave the provider default in place.
type CompletionOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// SystemMessage builds a system-role message
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}
