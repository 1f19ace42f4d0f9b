package scout

import "context"

// GeocodeCandidate is a single location returned by a Geocoder.
type GeocodeCandidate struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
}

// Geocoder resolves free-text place queries to locations.
type Geocoder interface {
	// Geocode returns the candidates matching query, best match first.
	// An empty slice with a nil error means the query matched nothing.
	Geocode(ctx context.Context, query string) ([]GeocodeCandidate, error)
}
