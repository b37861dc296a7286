package services

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type PollerOptions struct {
	Enabled  bool
	Interval time.Duration
	OnError  func(error)
}

// Poller runs fetch repeatedly with a fixed delay measured from the moment
// the previous fetch settled. Fetches never overlap.
type Poller struct {
	fetch func(ctx context.Context) error
	opts  PollerOptions
	clock clockwork.Clock

	mu      sync.Mutex
	parent  context.Context
	cancel  context.CancelFunc
	running bool
	gen     uint64

	// held for the length of every fetch, scheduled or not
	fetching sync.Mutex
}

func NewPoller(fetch func(ctx context.Context) error, opts PollerOptions, clock clockwork.Clock) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.Interval <= 0 {
		opts.Interval = 30 * time.Second
	}
	return &Poller{fetch: fetch, opts: opts, clock: clock}
}

// Start fetches immediately when enabled. Cancelling ctx stops the poller.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running && p.parent != nil && p.parent.Err() == nil {
		return
	}
	p.stopLocked()
	p.parent = ctx
	if p.opts.Enabled {
		p.startLocked()
	}
}

func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Poller) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.Enabled = enabled
	if !enabled {
		p.stopLocked()
		return
	}
	if p.parent != nil && !p.running {
		p.startLocked()
	}
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running && p.parent != nil && p.parent.Err() == nil
}

// Refetch runs one fetch outside the schedule and returns its error. It
// waits for a scheduled fetch in progress to settle first.
func (p *Poller) Refetch(ctx context.Context) error {
	p.fetching.Lock()
	defer p.fetching.Unlock()
	if err := p.fetch(ctx); err != nil {
		p.report(err)
		return err
	}
	return nil
}

func (p *Poller) startLocked() {
	if p.parent.Err() != nil {
		return
	}
	ctx, cancel := context.WithCancel(p.parent)
	p.gen++
	p.cancel = cancel
	p.running = true
	go p.loop(ctx, p.gen)
}

func (p *Poller) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
	p.running = false
}

// current reports whether gen is still the live schedule.
func (p *Poller) current(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running && p.gen == gen
}

func (p *Poller) loop(ctx context.Context, gen uint64) {
	for {
		if !p.scheduled(ctx, gen) {
			return
		}

		timer := p.clock.NewTimer(p.opts.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.Chan():
		}
	}
}

// scheduled runs one fetch of schedule gen. A replaced or stopped schedule
// fetches nothing, even when it was waiting behind a fetch of another one.
func (p *Poller) scheduled(ctx context.Context, gen uint64) bool {
	p.fetching.Lock()
	defer p.fetching.Unlock()
	if ctx.Err() != nil || !p.current(gen) {
		return false
	}
	if err := p.fetch(ctx); err != nil && ctx.Err() == nil {
		p.report(err)
	}
	return true
}

func (p *Poller) report(err error) {
	if p.opts.OnError != nil {
		p.opts.OnError(err)
	}
}
