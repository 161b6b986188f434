// Package input maps decoded terminal keys to game events.
package input

import (
	"maps"
	"unicode"

	"github.com/lixenwraith/neon-rails/event"
	"github.com/lixenwraith/neon-rails/terminal"
)

// KeyTable maps keys to the event each emits
type KeyTable struct {
	// Special keys (arrows, enter, ctrl combinations)
	SpecialKeys map[terminal.Key]event.GameEvent

	// Printable runes, matched case-insensitively
	Runes map[rune]event.GameEvent
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	left, _ := ActionEntry("steer_left")
	right, _ := ActionEntry("steer_right")
	up, _ := ActionEntry("throttle_up")
	down, _ := ActionEntry("throttle_down")
	quit, _ := ActionEntry("quit")
	start, _ := ActionEntry("start")

	return &KeyTable{
		SpecialKeys: map[terminal.Key]event.GameEvent{
			terminal.KeyLeft:   left,
			terminal.KeyRight:  right,
			terminal.KeyUp:     up,
			terminal.KeyDown:   down,
			terminal.KeyEnter:  start,
			terminal.KeyCtrlC:  quit,
			terminal.KeyEscape: quit,
		},
		Runes: map[rune]event.GameEvent{
			'a': left,
			'd': right,
			'w': up,
			's': down,
			'p': {Kind: event.Pause},
			'r': {Kind: event.Restart},
			' ': start,
			'q': quit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Map translates a terminal event; false means the event has no binding
// Resize events always map to event.Resize
func (kt *KeyTable) Map(ev terminal.Event) (event.GameEvent, bool) {
	switch ev.Type {
	case terminal.EventResize:
		return event.GameEvent{Kind: event.Resize, Width: ev.Width, Height: ev.Height}, true
	case terminal.EventClosed:
		return event.GameEvent{Kind: event.Quit}, true
	case terminal.EventKey:
	default:
		return event.GameEvent{}, false
	}

	if ev.Key == terminal.KeyRune {
		if ev.Modifiers&terminal.ModAlt != 0 {
			return event.GameEvent{}, false
		}
		ge, ok := kt.Runes[unicode.ToLower(ev.Rune)]
		return ge, ok && ge.Kind != event.KindNone
	}

	ge, ok := kt.SpecialKeys[ev.Key]
	return ge, ok && ge.Kind != event.KindNone
}

var defaultTable = DefaultKeyTable()

// Map translates a terminal event using the stock bindings
func Map(ev terminal.Event) (event.GameEvent, bool) {
	return defaultTable.Map(ev)
}
