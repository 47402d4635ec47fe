package form

import (
	"context"
	"sync"
	"time"
)

// Progress simulation defaults: +10 every 100ms, holding at 90 until the
// upload resolves.
const (
	ProgressInterval = 100 * time.Millisecond
	ProgressStep     = 10
	ProgressCap      = 90
	ProgressDone     = 100
)

// ProgressFunc receives every progress change.
type ProgressFunc func(percent int)

// Simulator produces fake upload progress. It does not measure bytes.
type Simulator struct {
	Interval time.Duration
	Step     int
	Cap      int
}

// DefaultSimulator returns the standard settings.
func DefaultSimulator() Simulator {
	return Simulator{Interval: ProgressInterval, Step: ProgressStep, Cap: ProgressCap}
}

// ProgressRun is one running simulation.
type ProgressRun struct {
	mu       sync.Mutex
	value    int
	onChange ProgressFunc
	cancel   context.CancelFunc
	done     chan struct{}
}

// Start begins ticking from 0. onChange may be nil.
func (s Simulator) Start(ctx context.Context, onChange ProgressFunc) *ProgressRun {
	ctx, cancel := context.WithCancel(ctx)
	run := &ProgressRun{onChange: onChange, cancel: cancel, done: make(chan struct{})}
	run.set(0)

	go func() {
		defer close(run.done)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run.mu.Lock()
				next := min(run.value+s.Step, s.Cap)
				changed := next != run.value
				run.value = next
				run.mu.Unlock()
				if changed && run.onChange != nil {
					run.onChange(next)
				}
			}
		}
	}()
	return run
}

// Value returns the current percentage.
func (r *ProgressRun) Value() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Finish stops ticking and snaps to 100 on success or back to 0 on failure.
func (r *ProgressRun) Finish(success bool) {
	r.cancel()
	<-r.done
	if success {
		r.set(ProgressDone)
	} else {
		r.set(0)
	}
}

func (r *ProgressRun) set(v int) {
	r.mu.Lock()
	r.value = v
	r.mu.Unlock()
	if r.onChange != nil {
		r.onChange(v)
	}
}
