package geo

import (
	"context"
	"fmt"
	"sync"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/pkg/e"
)

// Locator is the device geolocation capability. Implementations must honour ctx.
type Locator interface {
	CurrentPosition(ctx context.Context) (domain.Coordinates, error)
}

// Fixed is a position that is already known when the draft opens.
type Fixed domain.Coordinates

func (f Fixed) CurrentPosition(_ context.Context) (domain.Coordinates, error) {
	c := domain.Coordinates(f)
	if !c.Valid() {
		return domain.Coordinates{}, fmt.Errorf("geo.Fixed: %w", e.ErrInvalidCoordinates)
	}
	return c, nil
}

// Unavailable is used when the client has no geolocation capability at all.
type Unavailable struct{}

func (Unavailable) CurrentPosition(_ context.Context) (domain.Coordinates, error) {
	return domain.Coordinates{}, e.ErrLocationUnavailable
}

type result struct {
	coords domain.Coordinates
	err    error
}

// Pending waits for the device to report its position over a separate request.
// Only the first Deliver or Fail counts, and neither counts once the wait gave up.
type Pending struct {
	mu       sync.Mutex
	resolved bool
	closed   bool
	ch       chan result
}

func NewPending() *Pending {
	return &Pending{ch: make(chan result, 1)}
}

func (p *Pending) Deliver(c domain.Coordinates) bool {
	return p.resolve(result{coords: c})
}

func (p *Pending) Fail(err error) bool {
	if err == nil {
		err = e.ErrLocationUnavailable
	}
	return p.resolve(result{err: err})
}

func (p *Pending) resolve(r result) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolved || p.closed {
		return false
	}
	p.resolved = true
	p.ch <- r
	return true
}

func (p *Pending) CurrentPosition(ctx context.Context) (domain.Coordinates, error) {
	select {
	case r := <-p.ch:
		return r.position()
	case <-ctx.Done():
	}

	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	// a result that landed before closed was set still counts
	select {
	case r := <-p.ch:
		return r.position()
	default:
		return domain.Coordinates{}, fmt.Errorf("%w: %v", e.ErrLocationUnavailable, ctx.Err())
	}
}

func (r result) position() (domain.Coordinates, error) {
	if r.err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", e.ErrLocationUnavailable, r.err)
	}
	if !r.coords.Valid() {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", e.ErrLocationUnavailable, e.ErrInvalidCoordinates)
	}
	return r.coords, nil
}
