// Package poller drives the periodic pull of the full ticket set. The loop
// is armed only after the session readiness signal resolves to ready, fires
// an immediate fetch and then one per interval, and stops deterministically
// on context cancellation: the ticker is the only schedule and it dies with
// Run.
//
// Overlapping fetches are not serialized. Each fetch runs in its own
// goroutine and its result is applied when it completes, so a slow stale
// response can overwrite a fresher one. That matches the upstream
// dashboard's behavior and stays until a product decision changes it.
package poller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Ptxer/Ticket/internal/domain"
	"github.com/Ptxer/Ticket/internal/snapshot"
)

// Fetcher pulls the full ticket set from the upstream collaborator.
type Fetcher interface {
	FetchTickets(ctx context.Context) ([]domain.Ticket, error)
}

// ReadySignal gates arming. WaitReady blocks until the session resolves and
// reports false when it resolved to absent (or ctx was cancelled) — in that
// case the poller never fetches.
type ReadySignal interface {
	WaitReady(ctx context.Context) bool
}

type Poller struct {
	fetcher  Fetcher
	store    *snapshot.Store
	interval time.Duration

	mu        sync.Mutex
	lastErr   error
	observers []func(domain.Ticket)

	wg sync.WaitGroup
}

func New(f Fetcher, store *snapshot.Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Poller{fetcher: f, store: store, interval: interval}
}

// OnArrival registers an observer called exactly once per detected arrival.
// Register before Run.
func (p *Poller) OnArrival(fn func(domain.Ticket)) {
	p.observers = append(p.observers, fn)
}

// Err returns the latest fetch or apply failure, nil after a success.
func (p *Poller) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// SetErr records an operation failure from outside the poll cycle (the
// mutation gateway shares the same error banner).
func (p *Poller) SetErr(err error) {
	p.mu.Lock()
	p.lastErr = err
	p.mu.Unlock()
}

// Run blocks until ctx is cancelled. While ready is unresolved nothing runs
// and no timer is armed; an absent session exits without ever fetching.
func (p *Poller) Run(ctx context.Context, ready ReadySignal) error {
	if !ready.WaitReady(ctx) {
		log.Println("[poller] session not ready, polling disarmed")
		return ctx.Err()
	}

	log.Printf("[poller] armed, interval=%s", p.interval)
	p.spawn(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.wg.Wait()
			return ctx.Err()
		case <-ticker.C:
			p.spawn(ctx)
		}
	}
}

func (p *Poller) spawn(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.fetch(ctx)
	}()
}

// fetch performs one pull and applies the result. A result that resolves
// after teardown is discarded.
func (p *Poller) fetch(ctx context.Context) {
	tickets, err := p.fetcher.FetchTickets(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		log.Printf("[poller] fetch failed: %v", err)
		p.SetErr(err)
		return
	}

	arrivals := p.store.Replace(tickets)
	p.mu.Lock()
	p.lastErr = nil
	p.mu.Unlock()

	for _, t := range arrivals {
		if t.Validate() != nil {
			log.Printf("[poller] skip arrival without id (patient=%s)", t.DisplayName())
			continue
		}
		for _, fn := range p.observers {
			fn(t)
		}
	}
}
