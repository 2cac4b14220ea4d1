package debounce

import (
	"runtime/debug"
	"sync"
	"time"

	"github.com/dixieflatline76/Splitter/util/log"
)

// State is the state of a Trigger.
type State int

const (
	// Idle means no recompute is waiting.
	Idle State = iota
	// PendingRecompute means a recompute is scheduled for the latest snapshot.
	PendingRecompute
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == PendingRecompute {
		return "PendingRecompute"
	}
	return "Idle"
}

// Trigger coalesces a burst of snapshots into a single call of its action, made with the
// last snapshot once no new snapshot has arrived for the quiet period.
type Trigger[T any] struct {
	mu         sync.Mutex
	scheduler  Scheduler
	quiet      time.Duration
	action     func(T)
	latest     T
	cancel     CancelFunc
	generation uint64
	state      State
	closed     bool
}

// NewTrigger creates an idle trigger that runs action after quiet has elapsed.
func NewTrigger[T any](scheduler Scheduler, quiet time.Duration, action func(T)) *Trigger[T] {
	return &Trigger[T]{
		scheduler: scheduler,
		quiet:     quiet,
		action:    action,
		state:     Idle,
	}
}

// Notify records snapshot as the latest dependency value and restarts the quiet period.
// Any previously scheduled run is cancelled. Notify is a no-op after Close.
func (t *Trigger[T]) Notify(snapshot T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.stopLocked()

	t.latest = snapshot
	t.generation++
	gen := t.generation
	t.state = PendingRecompute
	t.cancel = t.scheduler.Schedule(t.quiet, func() { t.fire(gen) })
}

// Cancel drops any pending run and returns the trigger to Idle.
func (t *Trigger[T]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Close cancels pending work and makes every later Notify a no-op.
func (t *Trigger[T]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.closed = true
}

// State returns the current state.
func (t *Trigger[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Pending reports whether a run is scheduled.
func (t *Trigger[T]) Pending() bool {
	return t.State() == PendingRecompute
}

// stopLocked must be called with t.mu held.
func (t *Trigger[T]) stopLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	// Invalidate a timer that already fired and is waiting on the lock.
	t.generation++
	t.state = Idle
}

func (t *Trigger[T]) fire(gen uint64) {
	t.mu.Lock()
	if t.closed || gen != t.generation || t.state != PendingRecompute {
		t.mu.Unlock()
		return
	}
	snapshot := t.latest
	t.cancel = nil
	t.state = Idle
	t.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic in debounced recompute: %v\n%s", r, debug.Stack())
		}
	}()
	t.action(snapshot)
}
