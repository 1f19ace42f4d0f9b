package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scout"
)

// Ensure LoggingCompleter implements scout.Completer.
var _ scout.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. The prompt and response
// are only logged at debug level.
type LoggingCompleter struct {
	next   scout.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next scout.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs sizes and duration.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("complete",
			"prompt_bytes", len(prompt),
			"response_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
		c.logger.Debug("completion", "response", text)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}
