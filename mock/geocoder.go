package mock

import (
	"context"

	"github.com/fwojciec/scout"
)

var _ scout.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of scout.Geocoder.
type Geocoder struct {
	GeocodeFn func(ctx context.Context, query string) ([]scout.GeocodeCandidate, error)
}

func (g *Geocoder) Geocode(ctx context.Context, query string) ([]scout.GeocodeCandidate, error) {
	return g.GeocodeFn(ctx, query)
}
