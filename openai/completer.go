// Package openai implements scout.Completer with the OpenAI chat API.
package openai

import (
	"context"

	"github.com/fwojciec/scout"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

const (
	temperature = 0.7
	maxTokens   = 500
)

// Ensure Completer implements scout.Completer at compile time.
var _ scout.Completer = (*Completer)(nil)

// Completer implements scout.Completer using OpenAI chat completions.
type Completer struct {
	client openai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
// Additional options, such as option.WithBaseURL, are passed to the client.
func NewCompleter(apiKey, model string, opts ...option.RequestOption) (*Completer, error) {
	if apiKey == "" {
		return nil, scout.Errorf(scout.EUPSTREAM, "OPENAI_API_KEY not set")
	}
	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Completer{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", scout.Errorf(scout.EUPSTREAM, "openai: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", scout.Errorf(scout.EUPSTREAM, "openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
