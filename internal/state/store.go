package state

import "sync"

// Change is one pending host attribute write.
type Change struct {
	Key   string
	Value string
}

// Store coordinates attribute writes arriving from background host sources
// (the data file poller) with the UI loop that applies them. Writers push,
// the UI drains on its tick and forwards each change to the component in
// order.
type Store struct {
	mu      sync.Mutex
	pending []Change
}

// Push queues an attribute write.
func (s *Store) Push(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, Change{Key: key, Value: value})
}

// Drain returns the queued writes in arrival order and clears the queue.
func (s *Store) Drain() []Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	drained := s.pending
	s.pending = nil
	return drained
}

// Pending reports how many writes are queued.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
