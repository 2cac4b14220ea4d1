package debounce

import (
	"sort"
	"sync"
	"time"
)

// fakeScheduler is a manual clock: tasks run only when Advance moves time past their deadline.
type fakeScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*fakeTask
}

type fakeTask struct {
	due       time.Duration
	fn        func()
	cancelled bool
	ran       bool
}

func (f *fakeScheduler) Schedule(delay time.Duration, fn func()) CancelFunc {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := &fakeTask{due: f.now + delay, fn: fn}
	f.tasks = append(f.tasks, task)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		task.cancelled = true
	}
}

func (f *fakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	f.now += d
	var due []*fakeTask
	for _, task := range f.tasks {
		if !task.cancelled && !task.ran && task.due <= f.now {
			task.ran = true
			due = append(due, task)
		}
	}
	f.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, task := range due {
		task.fn()
	}
}

// live returns the number of scheduled tasks that have neither run nor been cancelled.
func (f *fakeScheduler) live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, task := range f.tasks {
		if !task.cancelled && !task.ran {
			n++
		}
	}
	return n
}
