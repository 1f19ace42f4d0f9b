// Package gemini implements scout.Completer and scout.TokenCounter with
// Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/scout"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const (
	temperature     = 0.7
	maxOutputTokens = 500
)

// Ensure Completer implements scout.Completer at compile time.
var _ scout.Completer = (*Completer)(nil)

// Completer implements scout.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, scout.Errorf(scout.EUPSTREAM, "GENAI_API_KEY not set")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends prompt as a single user turn and returns the response text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", scout.Errorf(scout.EUPSTREAM, "gemini client not initialised")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", scout.Errorf(scout.EUPSTREAM, "gemini: %v", err)
	}
	if result == nil {
		return "", scout.Errorf(scout.EUPSTREAM, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}
