package visual

import "github.com/lixenwraith/neon-rails/terminal"

// Neon palette defaults, overridable through config
var (
	RgbBackground = terminal.RGB{R: 3, G: 3, B: 12}
	RgbRailLeft   = terminal.Cyan
	RgbRailCenter = terminal.White
	RgbRailRight  = terminal.Magenta
	RgbObstacle   = terminal.RGB{R: 255, G: 98, B: 155}
	RgbPlayer     = terminal.White
	RgbHUD        = terminal.RGB{R: 201, G: 208, B: 255}
	RgbRivalA     = terminal.Magenta
	RgbRivalB     = terminal.RGB{R: 255, G: 98, B: 155}
	RgbSplashA    = terminal.Cyan
	RgbSplashB    = terminal.Magenta
	RgbAlert      = terminal.RGB{R: 255, G: 120, B: 120}
	RgbMessage    = terminal.RGB{R: 170, G: 230, B: 255}
	RgbPickup     = terminal.RGB{R: 255, G: 212, B: 71}
)

// Depth fade: entities beyond FadeStart blend toward the background, reaching FadeMax at FadeEnd
const (
	FadeStart = 8.0
	FadeEnd   = 60.0
	FadeMax   = 0.85
)

// Entity glow: stamp radius in pixels is GlowScale/depth, capped at GlowMaxRadius
const (
	GlowScale     = 6.0
	GlowMaxRadius = 2
)

// Splash streaks
const (
	SplashDensity   = 0.35
	SplashFrequency = 0.05
	SplashDrift     = 40.0 // pixels per second
)
