package render

import (
	"math"

	"github.com/lixenwraith/neon-rails/canvas"
	"github.com/lixenwraith/neon-rails/parameter/visual"
)

// drawSplash fills the canvas with drifting diagonal streaks
// The dot pattern is a hash of position and frame so it flickers without a shared rng
func (sc *Scene) drawSplash(c *canvas.DotCanvas, age float64) {
	shift := int(age * visual.SplashDrift)
	frame := uint32(age * 30)
	pw, ph := c.PixelWidth(), c.PixelHeight()

	for y := 0; y < ph; y += 2 {
		for x := 0; x < pw; x += 2 {
			if noise(uint32(x), uint32(y), frame) >= visual.SplashDensity {
				continue
			}
			glow := (math.Sin(float64(x+y+shift)*visual.SplashFrequency) + 1) * 0.5
			col := sc.Palette.SplashB
			if glow > 0.5 {
				col = sc.Palette.SplashA
			}
			c.Plot(x, y, col)
		}
	}
}

// noise maps a coordinate triple to [0,1)
func noise(x, y, z uint32) float64 {
	h := x*0x8da6b343 ^ y*0xd8163841 ^ z*0xcb1ab31f
	h ^= h >> 15
	h *= 0x2c1b3c6d
	h ^= h >> 12
	h *= 0x297a2d39
	h ^= h >> 15
	return float64(h>>8) / float64(1<<24)
}
