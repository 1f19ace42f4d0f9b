package pipeline

import (
	"context"
	"sync"

	"github.com/fwojciec/scout"
	"golang.org/x/sync/singleflight"
)

// handles is the pair of clients produced by a single initialisation.
type handles struct {
	completer scout.Completer
	geocoder  scout.Geocoder
}

// InitFunc constructs the language model and geocoding clients.
type InitFunc func(ctx context.Context) (scout.Completer, scout.Geocoder, error)

// Clients holds the process-wide collaborator clients. They are created on
// first use and reused by every later caller.
//
// Concurrent first calls share a single initialisation. Clients are only
// published once both were created, so a failed initialisation leaves
// Clients empty and the next call tries again.
type Clients struct {
	init  InitFunc
	group singleflight.Group

	mu        sync.RWMutex
	completer scout.Completer
	geocoder  scout.Geocoder
}

// NewClients creates a new Clients that initialises with fn.
func NewClients(fn InitFunc) *Clients {
	return &Clients{init: fn}
}

// Ensure returns the shared clients, initialising them if needed.
// Initialisation failures are returned as EUPSTREAM.
func (c *Clients) Ensure(ctx context.Context) (scout.Completer, scout.Geocoder, error) {
	if completer, geocoder, ok := c.load(); ok {
		return completer, geocoder, nil
	}

	v, err, _ := c.group.Do("init", func() (any, error) {
		if completer, geocoder, ok := c.load(); ok {
			return handles{completer, geocoder}, nil
		}

		// Detach from the caller so one cancelled request cannot fail the
		// initialisation other requests are waiting on.
		completer, geocoder, err := c.init(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if completer == nil || geocoder == nil {
			return nil, scout.Errorf(scout.EUPSTREAM, "client initialisation returned no client")
		}

		c.mu.Lock()
		c.completer, c.geocoder = completer, geocoder
		c.mu.Unlock()
		return handles{completer, geocoder}, nil
	})
	if err != nil {
		if scout.ErrorCode(err) == scout.EUPSTREAM {
			return nil, nil, err
		}
		return nil, nil, scout.Errorf(scout.EUPSTREAM, "initialising clients: %v", err)
	}

	h := v.(handles)
	return h.completer, h.geocoder, nil
}

func (c *Clients) load() (scout.Completer, scout.Geocoder, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.completer, c.geocoder, c.completer != nil && c.geocoder != nil
}
