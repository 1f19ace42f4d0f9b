package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scout"
)

// Ensure LoggingGeocoder implements scout.Geocoder.
var _ scout.Geocoder = (*LoggingGeocoder)(nil)

// LoggingGeocoder wraps a Geocoder with logging.
type LoggingGeocoder struct {
	next   scout.Geocoder
	logger *slog.Logger
}

// NewLoggingGeocoder creates a new LoggingGeocoder.
func NewLoggingGeocoder(next scout.Geocoder, logger *slog.Logger) *LoggingGeocoder {
	return &LoggingGeocoder{next: next, logger: logger}
}

// Geocode delegates to the wrapped geocoder and logs the candidate count.
func (g *LoggingGeocoder) Geocode(ctx context.Context, query string) (candidates []scout.GeocodeCandidate, err error) {
	defer func(begin time.Time) {
		g.logger.Info("geocode",
			"query", query,
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Geocode(ctx, query)
}
