package llm

import (
	"context"
	"fmt"
	"log/slog"
	"moodmate/internal/model"
	"strings"
)

const NoMoodsMessage = "No moods provided."

// ValidationError is returned when the input cannot be summarized at all.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExternalServiceError wraps any failure of the completion provider. Its
// message is the provider error text unchanged.
type ExternalServiceError struct {
	Provider string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return e.Err.Error()
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

type MoodSummarizer struct {
	client ChatClient
}

func NewMoodSummarizer(client ChatClient) *MoodSummarizer {
	return &MoodSummarizer{client: client}
}

func (s *MoodSummarizer) Provider() string {
	return s.client.Name()
}

func (s *MoodSummarizer) Model() string {
	return s.client.Model()
}

// Summarize sends the entries to the provider as a system instruction plus a
// single user prompt and returns the first choice, trimmed. Failures are
// either *ValidationError or *ExternalServiceError.
func (s *MoodSummarizer) Summarize(ctx context.Context, entries []model.MoodEntry) (string, error) {
	if len(entries) == 0 {
		return "", &ValidationError{Message: NoMoodsMessage}
	}

	prompt := BuildMoodPrompt(entries)
	slog.Info("prompt being sent to llm", "provider", s.client.Name(), "entries", len(entries), "prompt", prompt)

	resp, err := s.client.Complete(ctx, []ChatMessage{
		{Role: RoleSystem, Content: SystemInstruction},
		{Role: RoleUser, Content: prompt},
	})
	if err != nil {
		slog.Error("error during llm call", "provider", s.client.Name(), "error", err)
		return "", &ExternalServiceError{Provider: s.client.Name(), Err: err}
	}

	if resp == nil || len(resp.Choices) == 0 {
		err := fmt.Errorf("no response from %s", s.client.Name())
		slog.Error("error during llm call", "provider", s.client.Name(), "error", err)
		return "", &ExternalServiceError{Provider: s.client.Name(), Err: err}
	}

	slog.Info("llm full response", "provider", s.client.Name(), "model", resp.ModelUsed, "response", resp.Raw)

	return strings.TrimSpace(resp.Choices[0]), nil
}
