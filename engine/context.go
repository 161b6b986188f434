// Package engine wires the race together: one GameContext owns the state,
// canvas, projector and scene, and Step advances all of them by one tick.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/neon-rails/camera"
	"github.com/lixenwraith/neon-rails/canvas"
	"github.com/lixenwraith/neon-rails/config"
	"github.com/lixenwraith/neon-rails/event"
	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/input"
	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/render"
	"github.com/lixenwraith/neon-rails/scores"
	"github.com/lixenwraith/neon-rails/terminal"
	"github.com/lixenwraith/neon-rails/track"
)

// ErrQuit is returned by Step when the player asks to leave
var ErrQuit = errors.New("quit requested")

// CuePlayer receives the sound cues raised each tick
type CuePlayer interface {
	Play(cues ...game.Cue)
}

// Options configures NewGameContext
type Options struct {
	Config     *config.Config
	ConfigPath string // reload source; empty disables Reload
	Out        io.Writer
	Width      int
	Height     int
	Mode       terminal.ColorMode
	Sound      CuePlayer     // nil for silence
	Scores     *scores.Store // nil keeps no records
}

// GameContext holds everything one frame loop touches
type GameContext struct {
	// ===== Immutable After Init =====
	// Safe for concurrent read without synchronization.

	Queue      *event.Queue // input producers push, Step drains
	out        io.Writer
	configPath string
	sound      CuePlayer
	scores     *scores.Store

	// ===== Atomic =====
	// Read by the input goroutine, swapped by Step on reload.

	keys        atomic.Pointer[input.KeyTable]
	FrameNumber atomic.Uint64

	// ===== Main-Loop Exclusive =====
	// Touched only from Step; no synchronization required.

	Config    *config.Config
	State     *game.State
	Canvas    *canvas.DotCanvas
	Projector camera.Projector
	Scene     *render.Scene

	Width, Height int
	mode          terminal.ColorMode
	fov           float64 // projector built for this field of view
	footer        []string
	frame         []byte
	submitted     bool
}

// NewGameContext builds the state, canvas and scene for cfg
func NewGameContext(opts Options) (*GameContext, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Out == nil {
		return nil, fmt.Errorf("engine: nil output")
	}

	state, err := NewState(cfg)
	if err != nil {
		return nil, err
	}
	palette, err := cfg.RenderPalette()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}

	ctx := &GameContext{
		Queue:      event.NewQueue(),
		out:        opts.Out,
		configPath: opts.ConfigPath,
		sound:      opts.Sound,
		scores:     opts.Scores,
		Config:     cfg,
		State:      state,
		Scene:      render.NewScene(palette),
		Width:      opts.Width,
		Height:     opts.Height,
		mode:       opts.Mode,
	}
	ctx.keys.Store(keys)
	ctx.layout()
	return ctx, nil
}

// NewState builds the race for cfg's track kind
func NewState(cfg *config.Config) (*game.State, error) {
	opts := game.Options{Tuning: cfg.Tuning, Seed: cfg.Seed}
	switch cfg.Track {
	case config.TrackCircuit:
		circuit, err := track.NewCircuit(track.CircuitLayout, parameter.CircuitScale)
		if err != nil {
			return nil, fmt.Errorf("build circuit: %w", err)
		}
		opts.Circuit = circuit
	default:
		opts.Curve = cfg.Wave
	}
	return game.NewState(opts), nil
}

// Keys returns the active key table; safe from any goroutine
func (ctx *GameContext) Keys() *input.KeyTable {
	return ctx.keys.Load()
}

// MapInput translates a terminal event with the active key table
// Called from the input goroutine; results go through Queue
func (ctx *GameContext) MapInput(ev terminal.Event) {
	if ge, ok := ctx.Keys().Map(ev); ok {
		ctx.Queue.Push(ge)
	}
}

// Resize records new terminal dimensions; the canvas follows at the next layout
func (ctx *GameContext) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ctx.Width, ctx.Height = width, height
	ctx.layout()
}

// Reload rereads the config file, keeping the current config on failure
func (ctx *GameContext) Reload() error {
	if ctx.configPath == "" {
		return nil
	}
	cfg, err := config.Load(ctx.configPath)
	if err != nil {
		log.Printf("[config] reload failed: %v", err)
		return err
	}
	palette, err := cfg.RenderPalette()
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	if cfg.Track != ctx.Config.Track {
		log.Printf("[config] track change to %q applies on next start", cfg.Track)
		cfg.Track = ctx.Config.Track
	}
	ctx.Config = cfg
	ctx.Scene.SetPalette(palette)
	ctx.keys.Store(keys)
	ctx.State.ApplyTuning(cfg.Tuning)
	ctx.layout()
	log.Printf("[config] reloaded %s", ctx.configPath)
	return nil
}
