// Package event carries discrete game-layer events from producer goroutines
// (terminal input, resize watcher, config watcher) to the frame loop, which
// drains them at the start of each tick.
package event

// Kind identifies a game event
type Kind uint8

const (
	KindNone Kind = iota
	// LaneChange moves the target lane by Delta
	LaneChange
	// Throttle moves the target speed by Delta steps
	Throttle
	Pause
	Restart
	Quit
	Start
	// Resize carries the new terminal size in Width and Height
	Resize
	// Reload signals the config file changed on disk
	Reload
)

var kindNames = [...]string{
	KindNone:   "None",
	LaneChange: "LaneChange",
	Throttle:   "Throttle",
	Pause:      "Pause",
	Restart:    "Restart",
	Quit:       "Quit",
	Start:      "Start",
	Resize:     "Resize",
	Reload:     "Reload",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// GameEvent is a value type; fields beyond Kind are meaningful per kind
type GameEvent struct {
	Kind   Kind
	Delta  int
	Width  int
	Height int
}
