package parameter

import "time"

// Audio Output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; larger is steadier but lags cues
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume scales every cue (0..1)
	AudioMasterVolume = 0.6
)

// Start Cue: rising three-note arpeggio
const (
	StartNoteDuration = 90 * time.Millisecond
	StartNoteAttack   = 5 * time.Millisecond
	StartNoteRelease  = 40 * time.Millisecond
)

// Crash Cue: noise burst over a falling square
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 380 * time.Millisecond
	CrashStartFreq     = 220.0 // Hz
	CrashEndFreq       = 55.0  // Hz
)

// Hit Cue: short metallic clank
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 1 * time.Millisecond
	HitSoundRelease  = 100 * time.Millisecond
)

// Pickup Cue: two-note coin chime
const (
	PickupNote1Duration = 80 * time.Millisecond
	PickupNote2Duration = 280 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupNote1Release  = 40 * time.Millisecond
	PickupNote2Release  = 200 * time.Millisecond
)

// Lap Cue: bell with an octave overtone
const (
	LapSoundDuration      = 600 * time.Millisecond
	LapSoundAttack        = 5 * time.Millisecond
	LapFundamentalRelease = 550 * time.Millisecond
	LapOvertoneRelease    = 200 * time.Millisecond
	LapFundamentalFreq    = 880.0
	LapOvertoneFreq       = 1760.0
)
