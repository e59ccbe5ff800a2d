// Package frame provides a cancellable per-frame callback queue, the
// equivalent of requestAnimationFrame for hosts that own their render loop.
//
// The host calls Tick once per frame. Callbacks are one-shot: a callback that
// wants to run every frame requests itself again from inside its body.
package frame

import "sync"

// ID identifies a requested callback.
type ID uint64

// Scheduler queues callbacks for the next frame.
type Scheduler struct {
	mu      sync.Mutex
	next    ID
	pending map[ID]func()
	order   []ID
	frame   uint64
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[ID]func())}
}

// Request schedules fn for the next Tick and returns its ID.
func (s *Scheduler) Request(fn func()) ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

// Cancel removes a pending callback. Unknown IDs are ignored.
func (s *Scheduler) Cancel(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, id)
}

// Tick runs every callback requested before the call, in request order, and
// returns how many ran. Callbacks requested while ticking wait for the next
// frame; callbacks cancelled while ticking do not run.
func (s *Scheduler) Tick() int {
	s.mu.Lock()
	batch := s.order
	s.order = nil
	s.frame++
	s.mu.Unlock()

	ran := 0
	for _, id := range batch {
		s.mu.Lock()
		fn, ok := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		if !ok {
			continue
		}
		fn()
		ran++
	}
	return ran
}

// Pending reports how many callbacks wait for the next Tick.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Frame is the number of completed ticks.
func (s *Scheduler) Frame() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frame
}
