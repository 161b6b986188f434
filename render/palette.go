// Package render draws the race onto a dot canvas: rails sampled along the
// track, glow stamps for obstacles, pickups and cars, and the splash streaks.
package render

import (
	"github.com/lixenwraith/neon-rails/parameter/visual"
	"github.com/lixenwraith/neon-rails/terminal"
)

// Palette holds every color the scene draws with
type Palette struct {
	Background terminal.RGB
	RailLeft   terminal.RGB
	RailCenter terminal.RGB
	RailRight  terminal.RGB
	Obstacle   terminal.RGB
	Pickup     terminal.RGB
	Player     terminal.RGB
	Crashed    terminal.RGB
	Rivals     []terminal.RGB
	SplashA    terminal.RGB
	SplashB    terminal.RGB
}

// DefaultPalette returns the neon defaults
func DefaultPalette() Palette {
	return Palette{
		Background: visual.RgbBackground,
		RailLeft:   visual.RgbRailLeft,
		RailCenter: visual.RgbRailCenter,
		RailRight:  visual.RgbRailRight,
		Obstacle:   visual.RgbObstacle,
		Pickup:     visual.RgbPickup,
		Player:     visual.RgbPlayer,
		Crashed:    visual.RgbAlert,
		Rivals:     []terminal.RGB{visual.RgbRivalA, visual.RgbRivalB},
		SplashA:    visual.RgbSplashA,
		SplashB:    visual.RgbSplashB,
	}
}

func (p *Palette) rival(i int) terminal.RGB {
	if len(p.Rivals) == 0 {
		return p.Obstacle
	}
	return p.Rivals[i%len(p.Rivals)]
}
