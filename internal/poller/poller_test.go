package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ptxer/Ticket/internal/domain"
	"github.com/Ptxer/Ticket/internal/snapshot"
)

type fakeFetcher struct {
	mu      chan struct{} // optional gate: fetch blocks until it can receive
	results [][]domain.Ticket
	errs    []error
	calls   atomic.Int32
}

func (f *fakeFetcher) FetchTickets(ctx context.Context) ([]domain.Ticket, error) {
	if f.mu != nil {
		select {
		case <-f.mu:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	n := int(f.calls.Add(1)) - 1
	if n >= len(f.results) {
		n = len(f.results) - 1
	}
	return f.results[n], f.errs[n]
}

type readyNow struct{}

func (readyNow) WaitReady(context.Context) bool { return true }

type neverReady struct{}

func (neverReady) WaitReady(ctx context.Context) bool { return false }

func tickets(ids ...string) []domain.Ticket {
	out := make([]domain.Ticket, len(ids))
	for i, id := range ids {
		out[i] = domain.Ticket{ID: id, PatientName: "p-" + id}
	}
	return out
}

func TestFirstFetchIsBaseline(t *testing.T) {
	store := snapshot.NewStore()
	p := New(&fakeFetcher{results: [][]domain.Ticket{tickets("a", "b", "c")}, errs: []error{nil}}, store, time.Second)

	var fired int
	p.OnArrival(func(domain.Ticket) { fired++ })
	p.fetch(context.Background())

	if fired != 0 {
		t.Errorf("baseline fetch fired %d arrival events", fired)
	}
	if store.Len() != 3 {
		t.Errorf("store has %d tickets", store.Len())
	}
}

func TestArrivalFiresOncePerTicket(t *testing.T) {
	store := snapshot.NewStore()
	f := &fakeFetcher{
		results: [][]domain.Ticket{tickets("a", "b"), tickets("a", "b", "c")},
		errs:    []error{nil, nil},
	}
	p := New(f, store, time.Second)

	var got []string
	p.OnArrival(func(tk domain.Ticket) { got = append(got, tk.ID) })

	p.fetch(context.Background())
	p.fetch(context.Background())

	if len(got) != 1 || got[0] != "c" {
		t.Errorf("arrivals = %v, want [c]", got)
	}
}

func TestMalformedArrivalIsSkipped(t *testing.T) {
	store := snapshot.NewStore()
	withBlank := append(tickets("a", "b"), domain.Ticket{PatientName: "no-id"})
	f := &fakeFetcher{
		results: [][]domain.Ticket{tickets("a"), withBlank},
		errs:    []error{nil, nil},
	}
	p := New(f, store, time.Second)

	var got []string
	p.OnArrival(func(tk domain.Ticket) { got = append(got, tk.ID) })
	p.fetch(context.Background())
	p.fetch(context.Background())

	if len(got) != 1 || got[0] != "b" {
		t.Errorf("arrivals = %v, want [b] with the id-less record skipped", got)
	}
}

func TestFetchFailureKeepsSnapshotAndSetsError(t *testing.T) {
	store := snapshot.NewStore()
	boom := errors.New("boom")
	f := &fakeFetcher{
		results: [][]domain.Ticket{tickets("a", "b"), nil, tickets("a", "b")},
		errs:    []error{nil, boom, nil},
	}
	p := New(f, store, time.Second)

	p.fetch(context.Background())
	p.fetch(context.Background())
	if store.Len() != 2 {
		t.Errorf("failed fetch advanced the store: len=%d", store.Len())
	}
	if !errors.Is(p.Err(), boom) {
		t.Errorf("Err = %v, want boom", p.Err())
	}

	p.fetch(context.Background())
	if p.Err() != nil {
		t.Errorf("Err = %v after a success, want nil", p.Err())
	}
}

func TestResultAfterTeardownIsDiscarded(t *testing.T) {
	store := snapshot.NewStore()
	store.Replace(tickets("a"))

	gate := make(chan struct{})
	f := &fakeFetcher{mu: gate, results: [][]domain.Ticket{tickets("x", "y")}, errs: []error{nil}}
	p := New(f, store, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.fetch(ctx)
		close(done)
	}()

	cancel()
	close(gate)
	<-done

	if store.Len() != 1 {
		t.Errorf("result applied after teardown: len=%d", store.Len())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	store := snapshot.NewStore()
	f := &fakeFetcher{results: [][]domain.Ticket{tickets("a")}, errs: []error{nil}}
	p := New(f, store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, readyNow{}) }()

	time.Sleep(25 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	calls := f.calls.Load()
	time.Sleep(25 * time.Millisecond)
	if f.calls.Load() != calls {
		t.Error("fetches kept firing after teardown")
	}
}

func TestAbsentSessionNeverFetches(t *testing.T) {
	store := snapshot.NewStore()
	f := &fakeFetcher{results: [][]domain.Ticket{tickets("a")}, errs: []error{nil}}
	p := New(f, store, time.Millisecond)

	_ = p.Run(context.Background(), neverReady{})
	if f.calls.Load() != 0 {
		t.Errorf("absent session fetched %d times", f.calls.Load())
	}
}
