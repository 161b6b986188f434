// Package clock drives the per-frame callback: it measures and clamps the
// delta time, runs the step synchronously and paces the next tick.
package clock

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-rails/parameter"
)

var (
	// ErrHalted is returned by Run on a clock whose step already failed
	ErrHalted = errors.New("frame clock halted by step failure")

	// ErrRunning is returned by Run when another Run is in progress
	ErrRunning = errors.New("frame clock already running")
)

// StepFunc advances one frame by dt seconds
type StepFunc func(dt float64) error

// StepError wraps a failure raised inside the step; the clock never ticks again
type StepError struct {
	Tick  uint64
	Err   error
	Panic any
	Stack []byte
}

func (e *StepError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("step panicked on tick %d: %v", e.Tick, e.Panic)
	}
	return fmt.Sprintf("step failed on tick %d: %v", e.Tick, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Options configures a FrameClock
type Options struct {
	// TargetRate is ticks per second; 0 runs uncapped
	TargetRate int

	// MaxDelta clamps dt in seconds; 0 selects parameter.MaxDelta
	MaxDelta float64

	// Time defaults to the system clock
	Time TimeSource
}

// FrameClock is the single scheduler of the frame loop
// Ticks never overlap: Run calls step on its own goroutine, one at a time
type FrameClock struct {
	interval time.Duration
	maxDelta float64
	time     TimeSource

	last time.Time

	running atomic.Bool
	halted  atomic.Bool
	stopped atomic.Bool
	ticks   atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates a clock; it does nothing until Run
func New(opts Options) *FrameClock {
	fc := &FrameClock{
		maxDelta: opts.MaxDelta,
		time:     opts.Time,
		stopChan: make(chan struct{}),
	}
	if fc.maxDelta <= 0 {
		fc.maxDelta = parameter.MaxDelta
	}
	if fc.time == nil {
		fc.time = NewTimeProvider()
	}
	if opts.TargetRate > 0 {
		fc.interval = time.Second / time.Duration(opts.TargetRate)
	}
	return fc
}

// Run blocks, ticking until ctx is done, Stop is called or step fails
// A step error or panic is returned as *StepError and halts the clock for good
func (fc *FrameClock) Run(ctx context.Context, step StepFunc) error {
	if fc.halted.Load() {
		return ErrHalted
	}
	if !fc.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer fc.running.Store(false)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	fc.last = fc.time.Now()

	for {
		if fc.stopped.Load() || ctx.Err() != nil {
			return nil
		}

		start := fc.time.Now()
		dt := ClampDelta(start.Sub(fc.last).Seconds(), fc.maxDelta)
		fc.last = start

		tick := fc.ticks.Add(1)
		if err := fc.invoke(tick, step, dt); err != nil {
			fc.halted.Store(true)
			log.Printf("[clock] halted: %v", err)
			return err
		}

		if fc.interval == 0 {
			// Uncapped: yield so input and signal goroutines get scheduled
			runtime.Gosched()
			continue
		}

		wait := PacingDelay(fc.interval, fc.time.Now().Sub(start))
		if wait == 0 {
			continue
		}
		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-fc.stopChan:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// invoke runs one step, converting a panic into a StepError
func (fc *FrameClock) invoke(tick uint64, step StepFunc, dt float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &StepError{Tick: tick, Panic: r, Stack: debug.Stack()}
		}
	}()

	if stepErr := step(dt); stepErr != nil {
		return &StepError{Tick: tick, Err: stepErr}
	}
	return nil
}

// Stop prevents any further tick from starting, cancelling a pending wait
// Safe from any goroutine and from inside step; idempotent
func (fc *FrameClock) Stop() {
	fc.stopOnce.Do(func() {
		fc.stopped.Store(true)
		close(fc.stopChan)
	})
}

// Ticks returns the number of steps started
func (fc *FrameClock) Ticks() uint64 {
	return fc.ticks.Load()
}

// Halted reports whether a step failure stopped the clock
func (fc *FrameClock) Halted() bool {
	return fc.halted.Load()
}

// ClampDelta limits dt to [0, maxDelta]
func ClampDelta(dt, maxDelta float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

// PacingDelay returns max(0, interval - work)
func PacingDelay(interval, work time.Duration) time.Duration {
	if work >= interval {
		return 0
	}
	return interval - work
}
