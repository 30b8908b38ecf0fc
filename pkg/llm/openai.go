package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const groqBaseURL = "https://api.groq.com/openai/v1/"

// OpenAIClient talks to the OpenAI chat completions API or any endpoint that
// speaks the same protocol.
type OpenAIClient struct {
	client *openai.Client
	model  string
	name   string
}

func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	return newOpenAICompatibleClient("openai", apiKey, model, baseURL)
}

// NewGroqClient points the OpenAI SDK at Groq's OpenAI-compatible endpoint.
func NewGroqClient(apiKey, model, baseURL string) *OpenAIClient {
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return newOpenAICompatibleClient("groq", apiKey, model, baseURL)
}

func newOpenAICompatibleClient(name, apiKey, model, baseURL string) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  model,
		name:   name,
	}
}

func (c *OpenAIClient) Name() string {
	return c.name
}

func (c *OpenAIClient) Model() string {
	return c.model
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatMessage) (*Completion, error) {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case RoleUser:
			params = append(params, openai.UserMessage(m.Content))
		case RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: params,
	})
	if err != nil {
		return nil, err
	}

	choices := make([]string, len(resp.Choices))
	for i, choice := range resp.Choices {
		choices[i] = choice.Message.Content
	}

	modelUsed := resp.Model
	if modelUsed == "" {
		modelUsed = c.model
	}

	return &Completion{
		Choices:   choices,
		Raw:       resp.RawJSON(),
		ModelUsed: modelUsed,
	}, nil
}
