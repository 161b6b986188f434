package track

// LapCounter detects loop completion from successive progress samples
//
// A lap is counted when progress drops by more than Threshold between two
// observations. This is a heuristic: a backward jump larger than Threshold in a
// single tick (a respawn at the start line, for one) also counts as a lap.
type LapCounter struct {
	Threshold float64

	prev   float64
	primed bool
}

// Reset primes the counter so the next Observe compares against progress
func (l *LapCounter) Reset(progress float64) {
	l.prev = progress
	l.primed = true
}

// Observe records progress and reports whether it completed a lap
func (l *LapCounter) Observe(progress float64) bool {
	if !l.primed {
		l.Reset(progress)
		return false
	}
	lapped := progress < l.prev-l.Threshold
	l.prev = progress
	return lapped
}
