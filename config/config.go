// Package config loads runtime settings from TOML or YAML files.
//
// Every field has a default taken from package parameter; a file only needs
// the keys it overrides. Unknown keys are rejected so typos surface early.
package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/terminal"
	"github.com/lixenwraith/neon-rails/track"
)

// Track kinds
const (
	TrackWave    = "wave"
	TrackCircuit = "circuit"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalid       = errors.New("invalid config")
)

// Config is the full runtime configuration
type Config struct {
	Track    string  `toml:"track" yaml:"track"`
	Color    string  `toml:"color" yaml:"color"`
	FPS      int     `toml:"fps" yaml:"fps"`
	Uncapped bool    `toml:"uncapped" yaml:"uncapped"`
	MaxDelta float64 `toml:"max_delta" yaml:"max_delta"`
	FOV      float64 `toml:"fov" yaml:"fov"`
	Seed     uint64  `toml:"seed" yaml:"seed"`
	Mute     bool    `toml:"mute" yaml:"mute"`
	Scores   bool    `toml:"save_scores" yaml:"save_scores"`

	Tuning  game.Tuning       `toml:"tuning" yaml:"tuning"`
	Wave    track.Wave        `toml:"wave" yaml:"wave"`
	Palette map[string]string `toml:"palette" yaml:"palette"`
	Keys    map[string]string `toml:"keys" yaml:"keys"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Track:    TrackWave,
		Color:    "auto",
		FPS:      parameter.TargetFPS,
		MaxDelta: parameter.MaxDelta,
		FOV:      parameter.FieldOfView,
		Scores:   true,
		Tuning:   game.DefaultTuning(),
		Wave:     track.DefaultWave(),
	}
}

// Validate rejects values the game cannot run with
// All problems are reported together
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Track {
	case TrackWave, TrackCircuit:
	default:
		bad("track %q (want %s or %s)", c.Track, TrackWave, TrackCircuit)
	}
	if _, err := terminal.ParseColorMode(c.Color); err != nil {
		bad("color: %v", err)
	}
	if c.FPS < 0 {
		bad("fps %d < 0", c.FPS)
	}
	if c.MaxDelta <= 0 || c.MaxDelta > 1 {
		bad("max_delta %g outside (0,1]", c.MaxDelta)
	}
	if c.FOV <= 10 || c.FOV >= 170 {
		bad("fov %g outside (10,170)", c.FOV)
	}

	t := &c.Tuning
	if t.LaneOffset <= 0 {
		bad("tuning.lane_offset %g <= 0", t.LaneOffset)
	}
	if t.LaneSpringFreq <= 0 || t.LaneSpringDamp < 0 {
		bad("tuning lane spring frequency %g damping %g", t.LaneSpringFreq, t.LaneSpringDamp)
	}
	if t.SpeedMin < 0 || t.SpeedMax <= t.SpeedMin {
		bad("tuning speed range [%g,%g]", t.SpeedMin, t.SpeedMax)
	}
	if t.SpeedStart < t.SpeedMin || t.SpeedStart > t.SpeedMax {
		bad("tuning.speed_start %g outside [%g,%g]", t.SpeedStart, t.SpeedMin, t.SpeedMax)
	}
	if t.ThrottleStep <= 0 {
		bad("tuning.throttle_step %g <= 0", t.ThrottleStep)
	}
	if t.ObstacleCount < 0 || t.RivalCount < 0 {
		bad("tuning counts obstacles %d rivals %d", t.ObstacleCount, t.RivalCount)
	}
	if t.Laps < 1 {
		bad("tuning.laps %d < 1", t.Laps)
	}
	if t.LapDropThreshold <= 0 || t.LapDropThreshold >= 1 {
		bad("tuning.lap_drop_threshold %g outside (0,1)", t.LapDropThreshold)
	}

	if _, err := c.RenderPalette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.KeyTable(); err != nil {
		errs = append(errs, fmt.Errorf("%w: keys: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// ColorMode resolves the color setting, detecting from the environment for "auto"
func (c *Config) ColorMode() terminal.ColorMode {
	mode, err := terminal.ParseColorMode(c.Color)
	if err != nil {
		return terminal.DetectColorMode()
	}
	return mode
}

// ClockRate returns the frame clock target rate and delta clamp
func (c *Config) ClockRate() (rate int, maxDelta float64) {
	if c.Uncapped {
		return 0, parameter.MaxDeltaCapped
	}
	return c.FPS, c.MaxDelta
}
