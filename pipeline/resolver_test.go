package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/scout"
	"github.com/fwojciec/scout/mock"
	"github.com/fwojciec/scout/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedGeocoder resolves queries present in places and misses everything else.
func fixedGeocoder(places map[string]scout.GeocodeCandidate) *mock.Geocoder {
	return &mock.Geocoder{
		GeocodeFn: func(_ context.Context, query string) ([]scout.GeocodeCandidate, error) {
			if c, ok := places[query]; ok {
				return []scout.GeocodeCandidate{c}, nil
			}
			return nil, nil
		},
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("partitions mixed outcomes", func(t *testing.T) {
		t.Parallel()

		geocoder := fixedGeocoder(map[string]scout.GeocodeCandidate{
			"A, X, Y": {Latitude: 1.5, Longitude: 2.5, FormattedAddress: "A street, X, Y"},
		})
		r := &pipeline.Resolver{Geocoder: geocoder}

		result := r.Resolve(context.Background(), []string{"A, X, Y", "B, X, Y"})

		assert.Equal(t, []scout.Coordinate{
			{Name: "A", Latitude: 1.5, Longitude: 2.5, Address: "A street, X, Y"},
		}, result.Coordinates)
		assert.Equal(t, []string{"B, X, Y"}, result.Unresolved)
	})

	t.Run("derives name from text before first comma", func(t *testing.T) {
		t.Parallel()

		geocoder := fixedGeocoder(map[string]scout.GeocodeCandidate{
			"Central Park, New York, USA": {Latitude: 40.78, Longitude: -73.96, FormattedAddress: "New York, NY, USA"},
		})
		r := &pipeline.Resolver{Geocoder: geocoder}

		result := r.Resolve(context.Background(), []string{"Central Park, New York, USA"})

		require.Len(t, result.Coordinates, 1)
		assert.Equal(t, "Central Park", result.Coordinates[0].Name)
	})

	t.Run("uses first candidate only", func(t *testing.T) {
		t.Parallel()

		geocoder := &mock.Geocoder{
			GeocodeFn: func(context.Context, string) ([]scout.GeocodeCandidate, error) {
				return []scout.GeocodeCandidate{
					{Latitude: 1, Longitude: 1, FormattedAddress: "first"},
					{Latitude: 2, Longitude: 2, FormattedAddress: "second"},
				}, nil
			},
		}
		r := &pipeline.Resolver{Geocoder: geocoder}

		result := r.Resolve(context.Background(), []string{"Springfield"})

		require.Len(t, result.Coordinates, 1)
		assert.Equal(t, "first", result.Coordinates[0].Address)
		assert.Equal(t, "Springfield", result.Coordinates[0].Name)
	})

	t.Run("isolates geocoder errors per entity", func(t *testing.T) {
		t.Parallel()

		var calls []string
		geocoder := &mock.Geocoder{
			GeocodeFn: func(_ context.Context, query string) ([]scout.GeocodeCandidate, error) {
				calls = append(calls, query)
				if query == "Bad, X, Y" {
					return nil, errors.New("OVER_QUERY_LIMIT")
				}
				return []scout.GeocodeCandidate{{FormattedAddress: query}}, nil
			},
		}
		r := &pipeline.Resolver{Geocoder: geocoder}

		result := r.Resolve(context.Background(), []string{"Good, X, Y", "Bad, X, Y", "Fine, X, Y"})

		assert.Equal(t, []string{"Good, X, Y", "Bad, X, Y", "Fine, X, Y"}, calls)
		require.Len(t, result.Coordinates, 2)
		assert.Equal(t, "Good", result.Coordinates[0].Name)
		assert.Equal(t, "Fine", result.Coordinates[1].Name)
		assert.Equal(t, []string{"Bad, X, Y"}, result.Unresolved)
	})

	t.Run("returns empty lists for no entities", func(t *testing.T) {
		t.Parallel()

		r := &pipeline.Resolver{Geocoder: fixedGeocoder(nil)}

		result := r.Resolve(context.Background(), nil)

		assert.NotNil(t, result.Coordinates)
		assert.NotNil(t, result.Unresolved)
		assert.Equal(t, 0, result.Len())
	})

	t.Run("applies per-call timeout", func(t *testing.T) {
		t.Parallel()

		geocoder := &mock.Geocoder{
			GeocodeFn: func(ctx context.Context, _ string) ([]scout.GeocodeCandidate, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		r := &pipeline.Resolver{Geocoder: geocoder, CallTimeout: 10 * time.Millisecond}

		result := r.Resolve(context.Background(), []string{"Slow, X, Y"})

		assert.Equal(t, []string{"Slow, X, Y"}, result.Unresolved)
	})
}

func TestResolver_Resolve_Partition(t *testing.T) {
	t.Parallel()

	entities := make([]string, 50)
	places := make(map[string]scout.GeocodeCandidate)
	for i := range entities {
		entities[i] = fmt.Sprintf("Place %d, City, Country", i)
		if i%3 == 0 {
			places[entities[i]] = scout.GeocodeCandidate{Latitude: float64(i)}
		}
	}

	for _, concurrency := range []int{0, 1, 4, 16} {
		t.Run(fmt.Sprintf("concurrency=%d", concurrency), func(t *testing.T) {
			t.Parallel()

			r := &pipeline.Resolver{Geocoder: fixedGeocoder(places), Concurrency: concurrency}

			result := r.Resolve(context.Background(), entities)

			assert.Equal(t, len(entities), result.Len())

			seen := make(map[string]int)
			for _, c := range result.Coordinates {
				seen[c.Name+", City, Country"]++
			}
			for _, u := range result.Unresolved {
				seen[u]++
			}
			for _, e := range entities {
				assert.Equal(t, 1, seen[e], "entity %q", e)
			}

			for i := 1; i < len(result.Coordinates); i++ {
				assert.Less(t, result.Coordinates[i-1].Latitude, result.Coordinates[i].Latitude)
			}
		})
	}
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	t.Parallel()

	geocoder := fixedGeocoder(map[string]scout.GeocodeCandidate{
		"A, X, Y": {Latitude: 1, Longitude: 2, FormattedAddress: "a"},
		"C, X, Y": {Latitude: 3, Longitude: 4, FormattedAddress: "c"},
	})
	r := &pipeline.Resolver{Geocoder: geocoder, Concurrency: 3}
	entities := []string{"A, X, Y", "B, X, Y", "C, X, Y", "D, X, Y"}

	first := r.Resolve(context.Background(), entities)
	second := r.Resolve(context.Background(), entities)

	assert.Equal(t, first, second)
}

func TestResolver_Resolve_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		inFlight int
		peak     int
		calls    atomic.Int32
	)
	geocoder := &mock.Geocoder{
		GeocodeFn: func(context.Context, string) ([]scout.GeocodeCandidate, error) {
			calls.Add(1)
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil, nil
		},
	}
	r := &pipeline.Resolver{Geocoder: geocoder, Concurrency: 2}

	r.Resolve(context.Background(), []string{"a", "b", "c", "d", "e", "f"})

	assert.Equal(t, int32(6), calls.Load())
	assert.LessOrEqual(t, peak, 2)
}
