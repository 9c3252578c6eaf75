package runner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/minhyannv/agent-run-go/pkg/config"
)

const completionJSON = `{
  "id": "chatcmpl-test",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "first choice"}},
    {"index": 1, "finish_reason": "stop", "message": {"role": "assistant", "content": "second choice"}}
  ]
}`

// TestOpenAICompleterReturnsFirstChoice verifies the request shape and that only the first choice is used.
func TestOpenAICompleterReturnsFirstChoice(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionJSON)
	}))
	defer server.Close()

	c := NewOpenAICompleter(config.Config{APIKey: "sk-test", BaseURL: server.URL + "/v1/"})
	reply, err := c.Complete(context.Background(), CompletionRequest{
		Model:  "gpt-4o-mini",
		System: systemPrompt,
		User:   BuildUserPrompt("g", "ctx"),
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "first choice" {
		t.Fatalf("expected first choice, got %q", reply)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotBody.Model != "gpt-4o-mini" || len(gotBody.Messages) != 2 {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
	if gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Fatalf("unexpected roles: %+v", gotBody.Messages)
	}
	if gotBody.Messages[1].Content != "Goal: g\nContext:\nctx" {
		t.Fatalf("unexpected user content %q", gotBody.Messages[1].Content)
	}
}

// TestOpenAICompleterDoesNotRetry verifies a failing endpoint is called exactly once.
func TestOpenAICompleterDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer server.Close()

	c := NewOpenAICompleter(config.Config{APIKey: "sk-test", BaseURL: server.URL + "/v1/"})
	_, err := c.Complete(context.Background(), CompletionRequest{Model: "m", System: "s", User: "u"})
	if err == nil {
		t.Fatal("expected error from failing endpoint")
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected exactly one request, got %d", n)
	}
}

// TestOpenAICompleterEmptyChoices verifies an empty choices list is an error.
func TestOpenAICompleterEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":0,"model":"m","choices":[]}`)
	}))
	defer server.Close()

	c := NewOpenAICompleter(config.Config{APIKey: "sk-test", BaseURL: server.URL + "/v1/"})
	_, err := c.Complete(context.Background(), CompletionRequest{Model: "m", System: "s", User: "u"})
	if err == nil || err.Error() != "empty completion choices" {
		t.Fatalf("expected empty choices error, got %v", err)
	}
}
