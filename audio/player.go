// Package audio plays short synthesized cues for race events through the
// system speaker. Audio is optional: when the device cannot be opened the
// player stays silent and the game runs unchanged.
package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes cue sounds into the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	volume      float64
}

// NewPlayer creates a silent player; call Init to open the device
func NewPlayer(muted bool) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: parameter.AudioMasterVolume,
	}
	p.muted.Store(muted)
	return p
}

// Init opens the speaker; a muted player never touches the device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted.Load() {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Ready reports whether cues reach the speaker
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted.Load()
}

// SetMuted toggles output without closing the device
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Play queues cues; a no-op when silent
func (p *Player) Play(cues ...game.Cue) {
	if len(cues) == 0 || !p.Ready() {
		return
	}

	streams := make([]beep.Streamer, 0, len(cues))
	for _, c := range cues {
		if s := CueStreamer(c, sampleRate, p.volume); s != nil {
			streams = append(streams, s)
		}
	}

	speaker.Lock()
	p.mixer.Add(streams...)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
