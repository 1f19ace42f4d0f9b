package scout

import "context"

// Completer generates text from a prompt using a language model.
type Completer interface {
	// Complete sends prompt to the model and returns its text response.
	Complete(ctx context.Context, prompt string) (string, error)
}

// TokenCounter counts the model tokens in a piece of text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
