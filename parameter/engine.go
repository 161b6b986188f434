package parameter

import "time"

// Frame Loop Timing
const (
	// TargetFPS is the default pacing rate of the frame clock
	TargetFPS = 60

	// FrameUpdateInterval is the pacing interval derived from TargetFPS
	FrameUpdateInterval = time.Second / TargetFPS

	// MaxDelta clamps a single tick's delta time (seconds)
	// A stalled or suspended process resumes without a large time jump
	MaxDelta = 0.1

	// MaxDeltaCapped is the tighter clamp used by the fixed-cap loop variant (-uncapped)
	MaxDeltaCapped = 0.033
)

// Input Queue
const (
	// EventQueueSize is the fixed capacity of the input ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)
