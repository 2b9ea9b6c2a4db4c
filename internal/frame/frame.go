// Package frame provides the per-frame callback queue that drives cooperative
// work on the UI loop.
package frame

// Scheduler queues callbacks for the next frame boundary. It is not safe for
// concurrent use; it belongs to the goroutine running the UI loop.
type Scheduler struct {
	queue []func()
	spare []func()
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Request schedules fn to run on the next Flush.
func (s *Scheduler) Request(fn func()) {
	if fn == nil {
		return
	}
	s.queue = append(s.queue, fn)
}

// Pending is the number of callbacks waiting for the next frame.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Flush runs the callbacks queued before the call, oldest first. Anything
// requested while flushing waits for the following frame. Returns how many
// callbacks ran.
func (s *Scheduler) Flush() int {
	if len(s.queue) == 0 {
		return 0
	}
	batch := s.queue
	s.queue = s.spare[:0]
	for i, fn := range batch {
		batch[i] = nil
		fn()
	}
	s.spare = batch[:0]
	return len(batch)
}
