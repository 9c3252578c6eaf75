package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhyannv/agent-run-go/pkg/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a helpful assistant."

// CompletionRequest is a single system+user exchange.
type CompletionRequest struct {
	Model  string
	System string
	User   string
}

// Completer sends one chat completion and returns the first choice's content.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// BuildUserPrompt renders the user message sent to the model.
func BuildUserPrompt(goal, contextContent string) string {
	return fmt.Sprintf("Goal: %s\nContext:\n%s", goal, contextContent)
}

// OpenAICompleter calls the OpenAI chat completions API.
type OpenAICompleter struct {
	client openai.Client
}

// NewOpenAICompleter builds a completer from cfg. Extra request options are
// appended after the configured ones.
func NewOpenAICompleter(cfg config.Config, extra ...option.RequestOption) *OpenAICompleter {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	opts = append(opts, extra...)
	return &OpenAICompleter{client: openai.NewClient(opts...)}
}

// Complete performs one non-streaming completion request.
func (c *OpenAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}
