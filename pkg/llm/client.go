package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string
	Content string
}

// Completion is a provider response reduced to the choice texts, in the
// order the provider returned them.
type Completion struct {
	Choices   []string
	Raw       string
	ModelUsed string
}

type ChatClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (*Completion, error)
	Name() string
	Model() string
}
