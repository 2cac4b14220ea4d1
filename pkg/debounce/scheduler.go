package debounce

import (
	"sync"
	"time"
)

// CancelFunc cancels a scheduled task. It is safe to call more than once and after the task ran.
type CancelFunc func()

// Scheduler runs fn once after delay unless the returned CancelFunc is called first.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules tasks on runtime timers.
type TimerScheduler struct{}

// NewTimerScheduler creates a scheduler backed by time.AfterFunc.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule implements Scheduler.
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	var once sync.Once
	return func() {
		once.Do(func() { t.Stop() })
	}
}
