// Package googlemaps implements scout.Geocoder with the Google Maps
// Geocoding API.
package googlemaps

import (
	"context"

	"github.com/fwojciec/scout"
	"googlemaps.github.io/maps"
)

// Ensure Geocoder implements scout.Geocoder at compile time.
var _ scout.Geocoder = (*Geocoder)(nil)

// Geocoder implements scout.Geocoder using the Google Maps Geocoding API.
type Geocoder struct {
	client *maps.Client
}

// NewGeocoder creates a new Geocoder authenticated with apiKey. Additional
// options, such as maps.WithBaseURL, are passed to the client.
func NewGeocoder(apiKey string, opts ...maps.ClientOption) (*Geocoder, error) {
	if apiKey == "" {
		return nil, scout.Errorf(scout.EUPSTREAM, "MAPS_API_KEY not set")
	}

	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, scout.Errorf(scout.EUPSTREAM, "googlemaps: %v", err)
	}
	return &Geocoder{client: client}, nil
}

// Geocode forward-geocodes query. A query with no match yields an empty
// slice and a nil error.
func (g *Geocoder) Geocode(ctx context.Context, query string) ([]scout.GeocodeCandidate, error) {
	if query == "" {
		return nil, nil
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, err
	}

	candidates := make([]scout.GeocodeCandidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, scout.GeocodeCandidate{
			Latitude:         r.Geometry.Location.Lat,
			Longitude:        r.Geometry.Location.Lng,
			FormattedAddress: r.FormattedAddress,
		})
	}
	return candidates, nil
}
