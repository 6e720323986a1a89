// Package ai provides the language-model boundary: a chat-completion style
// interface with interchangeable backends. Components receive a ChatModel at
// construction; a nil model means no credential is configured and callers
// run their deterministic fallbacks instead.
package ai

import "context"

// Role values for chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged message in a model conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a chat-completion request. Temperature near zero is used for
// structured extraction; conversational replies use a higher value.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// ChatModel is the minimal model boundary every component depends on. All
// call sites must treat it as fallible and latent and have a defined
// fallback for errors.
type ChatModel interface {
	// Name identifies the backing model for logging.
	Name() string
	// Complete returns a single text completion for the request.
	Complete(ctx context.Context, req Request) (string, error)
}

// System is a convenience constructor for a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User is a convenience constructor for a user message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant is a convenience constructor for an assistant message.
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
