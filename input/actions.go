package input

import "github.com/lixenwraith/neon-rails/event"

// actionRegistry maps config action names to the event a binding emits
// "none" unbinds a key
var actionRegistry = map[string]event.GameEvent{
	"none": {},

	"steer_left":    {Kind: event.LaneChange, Delta: -1},
	"steer_right":   {Kind: event.LaneChange, Delta: 1},
	"throttle_up":   {Kind: event.Throttle, Delta: 1},
	"throttle_down": {Kind: event.Throttle, Delta: -1},

	"pause":   {Kind: event.Pause},
	"restart": {Kind: event.Restart},
	"start":   {Kind: event.Start},
	"quit":    {Kind: event.Quit},
}

// ActionEntry returns the event bound to an action name
func ActionEntry(name string) (event.GameEvent, bool) {
	ev, ok := actionRegistry[name]
	return ev, ok
}
