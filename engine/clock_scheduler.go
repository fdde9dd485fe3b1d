package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler arms one-shot callbacks. It never repeats on its own;
// the game loop re-arms it at the end of every non-terminal tick.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// ClockScheduler is the real-time Scheduler.
// Due callbacks are not run on the timer goroutine: they are handed to the owner
// through Ready(), so game state is only touched by the goroutine draining it.
type ClockScheduler struct {
	ready    chan func()
	stopChan chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	timers map[*time.Timer]struct{}

	// Callbacks delivered, for debugging and metrics
	fired atomic.Uint64
}

// NewClockScheduler creates a scheduler with a small delivery buffer
func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{
		ready:    make(chan func(), 4),
		stopChan: make(chan struct{}),
		timers:   make(map[*time.Timer]struct{}),
	}
}

// After delivers fn on Ready() once delay has elapsed. No-op after Stop.
func (cs *ClockScheduler) After(delay time.Duration, fn func()) {
	select {
	case <-cs.stopChan:
		return
	default:
	}

	// Hold the lock across creation so the callback cannot observe a nil timer
	cs.mu.Lock()
	defer cs.mu.Unlock()

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		cs.mu.Lock()
		delete(cs.timers, t)
		cs.mu.Unlock()

		select {
		case <-cs.stopChan:
			return
		default:
		}

		select {
		case cs.ready <- fn:
			cs.fired.Add(1)
		case <-cs.stopChan:
		}
	})
	cs.timers[t] = struct{}{}
}

// Ready yields due callbacks; the receiver must invoke them
func (cs *ClockScheduler) Ready() <-chan func() {
	return cs.ready
}

// Pending returns the number of armed timers
func (cs *ClockScheduler) Pending() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.timers)
}

// Fired returns the number of callbacks handed to Ready
func (cs *ClockScheduler) Fired() uint64 {
	return cs.fired.Load()
}

// Stop cancels armed timers and refuses further scheduling
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)

		cs.mu.Lock()
		for t := range cs.timers {
			t.Stop()
		}
		cs.timers = make(map[*time.Timer]struct{})
		cs.mu.Unlock()
	})
}

// ManualScheduler is a Scheduler driven by a MockTimeProvider.
// Tests advance time explicitly and callbacks run synchronously on the caller.
type ManualScheduler struct {
	clock   *MockTimeProvider
	pending []scheduledCall
	seq     uint64
}

type scheduledCall struct {
	at  time.Time
	seq uint64
	fn  func()
}

// NewManualScheduler creates a scheduler bound to clock
func NewManualScheduler(clock *MockTimeProvider) *ManualScheduler {
	return &ManualScheduler{clock: clock}
}

// After records fn to run at clock.Now()+delay
func (ms *ManualScheduler) After(delay time.Duration, fn func()) {
	ms.seq++
	ms.pending = append(ms.pending, scheduledCall{
		at:  ms.clock.Now().Add(delay),
		seq: ms.seq,
		fn:  fn,
	})
}

// Pending returns the number of callbacks not yet run
func (ms *ManualScheduler) Pending() int {
	return len(ms.pending)
}

// Advance moves the clock forward by d and runs every callback that became due,
// including ones armed by callbacks during the advance. The clock steps to each
// callback's due time before running it. Returns the number run.
func (ms *ManualScheduler) Advance(d time.Duration) int {
	target := ms.clock.Now().Add(d)

	ran := 0
	for {
		i := ms.earliest()
		if i < 0 || ms.pending[i].at.After(target) {
			break
		}
		if at := ms.pending[i].at; at.After(ms.clock.Now()) {
			ms.clock.SetTime(at)
		}
		ms.runAt(i)
		ran++
	}
	ms.clock.SetTime(target)
	return ran
}

// RunNext jumps the clock to the earliest pending callback and runs it.
// Returns false when nothing is pending.
func (ms *ManualScheduler) RunNext() bool {
	i := ms.earliest()
	if i < 0 {
		return false
	}
	if at := ms.pending[i].at; at.After(ms.clock.Now()) {
		ms.clock.SetTime(at)
	}
	ms.runAt(i)
	return true
}

// RunTicks runs up to n callbacks via RunNext and returns how many ran
func (ms *ManualScheduler) RunTicks(n int) int {
	ran := 0
	for ran < n && ms.RunNext() {
		ran++
	}
	return ran
}

func (ms *ManualScheduler) earliest() int {
	if len(ms.pending) == 0 {
		return -1
	}
	sort.SliceStable(ms.pending, func(a, b int) bool {
		if ms.pending[a].at.Equal(ms.pending[b].at) {
			return ms.pending[a].seq < ms.pending[b].seq
		}
		return ms.pending[a].at.Before(ms.pending[b].at)
	})
	return 0
}

func (ms *ManualScheduler) runAt(i int) {
	call := ms.pending[i]
	ms.pending = append(ms.pending[:i], ms.pending[i+1:]...)
	call.fn()
}
