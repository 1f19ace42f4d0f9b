package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/scout"
	"golang.org/x/sync/errgroup"
)

// DefaultGeocodeTimeout bounds a single geocoding call.
const DefaultGeocodeTimeout = 10 * time.Second

// Resolver geocodes extracted entities and partitions them into resolved
// coordinates and unresolved names.
type Resolver struct {
	Geocoder scout.Geocoder

	// Concurrency is the number of geocoding calls in flight at once.
	// Values below 2 resolve entities one at a time.
	Concurrency int

	// CallTimeout bounds each geocoding call. Zero means DefaultGeocodeTimeout.
	CallTimeout time.Duration
}

// outcome is the result of geocoding a single entity.
type outcome struct {
	entity     string
	coordinate scout.Coordinate
	resolved   bool
}

// Resolve geocodes every entity exactly once. A miss or an error for one
// entity marks only that entity as unresolved. Both result lists keep the
// input order of their entities regardless of Concurrency.
func (r *Resolver) Resolve(ctx context.Context, entities []string) *scout.Result {
	outcomes := make([]outcome, len(entities))

	if r.Concurrency < 2 {
		for i, entity := range entities {
			outcomes[i] = r.resolveOne(ctx, entity)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.Concurrency)
		for i, entity := range entities {
			g.Go(func() error {
				outcomes[i] = r.resolveOne(ctx, entity)
				return nil
			})
		}
		_ = g.Wait()
	}

	result := scout.NewResult()
	for _, o := range outcomes {
		if o.resolved {
			result.Coordinates = append(result.Coordinates, o.coordinate)
		} else {
			result.Unresolved = append(result.Unresolved, o.entity)
		}
	}
	return result
}

func (r *Resolver) resolveOne(ctx context.Context, entity string) outcome {
	timeout := r.CallTimeout
	if timeout <= 0 {
		timeout = DefaultGeocodeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	candidates, err := r.Geocoder.Geocode(ctx, entity)
	if err != nil || len(candidates) == 0 {
		return outcome{entity: entity}
	}

	// First candidate wins; there is no disambiguation against City, Country.
	best := candidates[0]
	return outcome{
		entity: entity,
		coordinate: scout.Coordinate{
			Name:      scout.EntityName(entity),
			Latitude:  best.Latitude,
			Longitude: best.Longitude,
			Address:   best.FormattedAddress,
		},
		resolved: true,
	}
}
