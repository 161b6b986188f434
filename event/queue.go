package event

import (
	"sync/atomic"

	"github.com/lixenwraith/neon-rails/parameter"
)

// Queue is a bounded lock-free ring buffer of game events
// Thread-Safety:
//   - Push: Lock-free CAS, any producer goroutine
//   - Consume/Drain: single consumer, the frame loop at tick start
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index

	// Consumer-owned buffer reused by Drain
	scratch []GameEvent
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (eq *Queue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
func (eq *Queue) Consume() []GameEvent {
	return eq.consumeInto(nil)
}

// consumeInto appends pending events to dst, stopping at the first slot still being written
func (eq *Queue) consumeInto(dst []GameEvent) []GameEvent {
	base := len(dst)
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return dst
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		dst = dst[:base]
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break // Writer incomplete
			}
			dst = append(dst, eq.events[idx])
		}

		read := uint64(len(dst) - base)
		if eq.head.CompareAndSwap(currentHead, currentHead+read) {
			for i := uint64(0); i < read; i++ {
				eq.published[(currentHead+i)&parameter.EventBufferMask].Store(false)
			}
			return dst
		}
	}
}

// Len returns approximate pending event count
func (eq *Queue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}
// Drain consumes pending events and hands them to fn in FIFO order
// Returns the number of events handled
func (eq *Queue) Drain(fn func(GameEvent)) int {
	eq.scratch = eq.consumeInto(eq.scratch[:0])
	for _, ev := range eq.scratch {
		fn(ev)
	}
	return len(eq.scratch)
}
