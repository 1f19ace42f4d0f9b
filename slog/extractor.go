package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scout"
)

// Ensure LoggingExtractor implements scout.Extractor.
var _ scout.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   scout.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scout.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (result *scout.ExtractResult, err error) {
	defer func(begin time.Time) {
		var contentBytes int
		if result != nil {
			contentBytes = len(result.ContentHTML) + len(result.Text)
		}
		e.logger.Debug("extract",
			"html_bytes", len(html),
			"content_bytes", contentBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
