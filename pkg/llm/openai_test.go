package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestOpenAIComplete(t *testing.T) {
	var got chatRequest
	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-3.5-turbo-0125",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": "  Hello there.  ",
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "gpt-3.5-turbo", srv.URL+"/")

	resp, err := client.Complete(context.Background(), []ChatMessage{
		{Role: RoleSystem, Content: SystemInstruction},
		{Role: RoleUser, Content: "Moods:\nEntry 1: Emoji: 😊, Note: Good day"},
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"  Hello there.  "}, resp.Choices)
	assert.Equal(t, "gpt-3.5-turbo-0125", resp.ModelUsed)
	assert.Equal(t, true, strings.Contains(resp.Raw, "chatcmpl-1"))

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, 2, len(got.Messages))
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, SystemInstruction, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "Moods:\nEntry 1: Emoji: 😊, Note: Good day", got.Messages[1].Content)
}

func TestOpenAICompleteAPIError(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("bad-key", "gpt-3.5-turbo", srv.URL+"/")

	_, err := client.Complete(context.Background(), []ChatMessage{{Role: RoleUser, Content: "hi"}})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "401"))
	assert.Equal(t, 1, requests)
}

func TestOpenAICompleteRejectsUnknownRole(t *testing.T) {
	client := NewOpenAIClient("test-key", "gpt-3.5-turbo", "http://127.0.0.1:1/")

	_, err := client.Complete(context.Background(), []ChatMessage{{Role: "tool", Content: "hi"}})

	assert.NotEqual(t, nil, err)
}

func TestGroqClientName(t *testing.T) {
	client := NewGroqClient("test-key", "llama-3.1-8b-instant", "")

	assert.Equal(t, "groq", client.Name())
	assert.Equal(t, "llama-3.1-8b-instant", client.Model())
}
