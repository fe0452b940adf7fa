package app

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetgo/kiosk/internal/printer"
	"github.com/jetsetgo/kiosk/internal/state"
)

const defaultPollInterval = 3 * time.Second

// Poller drives the periodic status refresh. It has two states, idle
// and polling: Start transitions idle→polling with one immediate poll
// followed by a fixed-interval ticker, Stop returns it to idle. Both
// transitions are idempotent, and Stop is safe before Start ever ran.
type Poller struct {
	store    *state.Store
	client   printer.API
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	// inFlight guards against a slow response overlapping the next
	// tick: a tick that finds a request still outstanding is skipped.
	inFlight atomic.Bool
}

// NewPoller builds an idle poller. A non-positive interval falls back
// to the 3-second default.
func NewPoller(store *state.Store, client printer.API, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{store: store, client: client, interval: interval}
}

// Start launches the polling loop. Calling Start on a running poller is
// a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		go p.poll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				go p.poll(ctx)
			}
		}
	}()
}

// Stop cancels the timer and returns the poller to idle. Safe to call
// twice or on a poller that never started; after Stop returns no
// further ticks fire.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the poller is in its polling state.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// poll performs one status request and publishes the outcome, unless a
// previous request is still in flight.
func (p *Poller) poll(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer p.inFlight.Store(false)

	status, err := p.client.FetchStatus(ctx)
	if ctx.Err() != nil {
		// Teardown cancelled the request; not a device failure.
		return
	}
	p.store.Update(status, err)
	if err != nil {
		log.Printf("status poll failed: %v", err)
	}
}
