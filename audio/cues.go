package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/parameter"
)

// Start arpeggio notes (A4, C#5, E5)
var startNotes = [3]float64{440.0, 554.37, 659.25}

// CueStreamer builds the finite sound for a game cue, nil for unknown cues
func CueStreamer(c game.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case game.CueStart:
		s = startSound(rate)
	case game.CueCrash:
		s = crashSound(rate)
	case game.CueHit:
		s = hitSound(rate)
	case game.CuePickup:
		s = pickupSound(rate)
	case game.CueLap:
		s = lapSound(rate)
	case game.CueFinish:
		s = beep.Seq(lapSound(rate), pickupSound(rate))
	default:
		return nil
	}
	return newVolume(s, volume)
}

func startSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(startNotes))
	for _, f := range startNotes {
		notes = append(notes, tone(f, WaveSquare,
			parameter.StartNoteDuration, parameter.StartNoteAttack, parameter.StartNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}

func crashSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.CrashSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)
	drop := NewEnvelope(NewSweep(parameter.CrashStartFreq, parameter.CrashEndFreq, d, WaveSquare, rate), d,
		parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(drop, 0.4))
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.HitSoundDuration
	body := tone(180, WaveSaw, d, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	ring := tone(1230, WaveSine, d, parameter.HitSoundAttack, parameter.HitSoundRelease/2, rate)
	return beep.Mix(newVolume(body, 0.6), newVolume(ring, 0.25))
}

// pickupSound is a two-note chime (B5, E6)
func pickupSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(987.77, WaveSquare, parameter.PickupNote1Duration,
		parameter.PickupSoundAttack, parameter.PickupNote1Release, rate)
	n2 := tone(1318.51, WaveSquare, parameter.PickupNote2Duration,
		parameter.PickupSoundAttack, parameter.PickupNote2Release, rate)
	return newVolume(beep.Seq(n1, n2), 0.4)
}

// lapSound is a bell: a sine fundamental with a quicker octave overtone
func lapSound(rate beep.SampleRate) beep.Streamer {
	n := rate.N(parameter.LapSoundDuration)
	fund := bellPartial(parameter.LapFundamentalFreq, n, rate)
	over := bellPartial(parameter.LapOvertoneFreq, n, rate)

	fundShaped := NewEnvelope(fund, parameter.LapSoundDuration,
		parameter.LapSoundAttack, parameter.LapFundamentalRelease, rate)
	overShaped := NewEnvelope(over, parameter.LapSoundDuration,
		parameter.LapSoundAttack, parameter.LapOvertoneRelease, rate)

	return beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
}

// bellPartial is n samples of a generator sine, falling back to the local oscillator
// when the frequency is above Nyquist for the rate
func bellPartial(freq float64, n int, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, rate.D(n), WaveSine, rate)
	}
	return beep.Take(n, s)
}
