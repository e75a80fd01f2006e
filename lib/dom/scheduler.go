package dom

import "go.uber.org/zap"

// maxFlushTicks bounds Flush against a task queue that never drains.
// A well-behaved component settles within two ticks; anything still
// producing work after this many ticks is feeding back on itself.
const maxFlushTicks = 64

// Scheduler is a single-threaded cooperative task queue modeling the host
// runtime's microtask loop. External edits enqueue delivery tasks; nothing
// runs until Step or Flush is called, so notifications are never delivered
// synchronously within the triggering edit.
//
// Scheduler is not safe for concurrent use. The whole substrate assumes a
// single goroutine, matching the cooperative event-callback model.
type Scheduler struct {
	queue []func()
	log   *zap.Logger
}

// NewScheduler creates a scheduler. Pass nil to disable logging.
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log}
}

// Enqueue adds a task to the current tick's backlog.
func (s *Scheduler) Enqueue(task func()) {
	s.queue = append(s.queue, task)
}

// Pending reports whether any tasks are queued.
func (s *Scheduler) Pending() bool {
	return len(s.queue) > 0
}

// Step runs one tick: every task queued before the call, in order.
// Tasks enqueued during the tick run on a later tick, which is what
// batches a burst of synchronous edits into one delivery per observer.
// Returns false if the queue was empty.
func (s *Scheduler) Step() bool {
	if len(s.queue) == 0 {
		return false
	}
	tick := s.queue
	s.queue = nil
	for _, task := range tick {
		task()
	}
	s.log.Debug("scheduler tick", zap.Int("tasks", len(tick)), zap.Int("carried", len(s.queue)))
	return true
}

// Flush runs ticks until the queue is quiescent and returns the number of
// ticks run. Delivery is capped at maxFlushTicks; a component that has not
// reached a fixpoint by then is looping and gets cut off rather than
// hanging the caller.
func (s *Scheduler) Flush() int {
	ticks := 0
	for s.Step() {
		ticks++
		if ticks >= maxFlushTicks {
			s.log.Warn("scheduler flush aborted, queue not quiescent",
				zap.Int("ticks", ticks), zap.Int("pending", len(s.queue)))
			break
		}
	}
	return ticks
}
