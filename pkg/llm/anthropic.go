package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// The Messages API requires an explicit output budget.
const anthropicMaxTokens = 1024

type AnthropicClient struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicClient(apiKey, model, baseURL string) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client: &client,
		model:  model,
	}
}

func (c *AnthropicClient) Name() string {
	return "anthropic"
}

func (c *AnthropicClient) Model() string {
	return c.model
}

func (c *AnthropicClient) Complete(ctx context.Context, messages []ChatMessage) (*Completion, error) {
	var system []anthropic.TextBlockParam
	var turns []anthropic.MessageParam
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case RoleUser:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case RoleAssistant:
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: anthropicMaxTokens,
		System:    system,
		Messages:  turns,
	})
	if err != nil {
		return nil, err
	}

	// Anthropic returns a single message made of content blocks, so the text
	// blocks together form the only choice.
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	var choices []string
	if sb.Len() > 0 {
		choices = []string{sb.String()}
	}

	modelUsed := string(resp.Model)
	if modelUsed == "" {
		modelUsed = c.model
	}

	return &Completion{
		Choices:   choices,
		Raw:       resp.RawJSON(),
		ModelUsed: modelUsed,
	}, nil
}
