package snapshot

import (
	"sync"

	"github.com/Ptxer/Ticket/internal/domain"
)

// Store holds the most recently fetched ticket set and the one before it.
// Poll results, write-through deletes and reads all go through the same
// mutex, so results apply in completion order.
type Store struct {
	mu       sync.Mutex
	current  []domain.Ticket
	previous []domain.Ticket
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs next as the current snapshot, displacing the old current
// into previous, and returns the arrivals computed against the displaced
// set. The diff runs inside the critical section so an interleaved Replace
// cannot pair it with the wrong baseline.
func (s *Store) Replace(next []domain.Ticket) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previous = s.current
	s.current = next
	return Arrivals(s.previous, s.current)
}

// Tickets returns a copy of the current snapshot.
func (s *Store) Tickets() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ticket, len(s.current))
	copy(out, s.current)
	return out
}

// Find returns the current ticket with the given id.
func (s *Store) Find(id string) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.current {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

// Remove deletes the first ticket matching id from the current snapshot,
// keeping the relative order of the rest. It reports whether anything was
// removed. Called only after the remote delete has been confirmed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.current {
		if t.ID == id {
			s.current = append(s.current[:i], s.current[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.current)
}
