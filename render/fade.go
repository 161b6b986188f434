package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-rails/parameter/visual"
	"github.com/lixenwraith/neon-rails/terminal"
)

// Fader blends colors toward the background with distance
type Fader struct {
	bg    colorful.Color
	start float64
	end   float64
	max   float64
}

// NewFader builds a fader for the given background
func NewFader(bg terminal.RGB) Fader {
	return Fader{
		bg:    toColorful(bg),
		start: visual.FadeStart,
		end:   visual.FadeEnd,
		max:   visual.FadeMax,
	}
}

// Amount returns the blend factor for a depth, 0 up close
func (f Fader) Amount(depth float64) float64 {
	if depth <= f.start {
		return 0
	}
	if depth >= f.end {
		return f.max
	}
	return (depth - f.start) / (f.end - f.start) * f.max
}

// Apply returns c faded for depth
func (f Fader) Apply(c terminal.RGB, depth float64) terminal.RGB {
	t := f.Amount(depth)
	if t == 0 {
		return c
	}
	r, g, b := toColorful(c).BlendRgb(f.bg, t).Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
