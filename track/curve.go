package track

import (
	"math"

	"github.com/lixenwraith/neon-rails/vmath"
)

// Curve maps an arc parameter to a world point
// Implementations must be continuous so a finite-difference tangent is stable
type Curve interface {
	World(s float64) vmath.Vec3F
}

// WaveTerm is one sinusoid: Amp * sin(Freq*s + Phase)
type WaveTerm struct {
	Amp   float64 `toml:"amp" yaml:"amp"`
	Freq  float64 `toml:"freq" yaml:"freq"`
	Phase float64 `toml:"phase" yaml:"phase"`
}

// Wave is a closed-form curve advancing one world unit along X per arc unit
// with Y and Z built from sums of sinusoids
type Wave struct {
	Y []WaveTerm `toml:"y" yaml:"y"`
	Z []WaveTerm `toml:"z" yaml:"z"`
}

// DefaultWave returns the stock rolling track
func DefaultWave() Wave {
	return Wave{
		Y: []WaveTerm{
			{Amp: 3, Freq: 0.17},
			{Amp: 1.4, Freq: 0.05},
		},
		Z: []WaveTerm{
			{Amp: 4, Freq: 0.11, Phase: math.Pi / 2},
			{Amp: 2.2, Freq: 0.031},
		},
	}
}

func (w Wave) World(s float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: s,
		Y: sumTerms(w.Y, s),
		Z: sumTerms(w.Z, s),
	}
}

func sumTerms(terms []WaveTerm, s float64) float64 {
	var v float64
	for _, t := range terms {
		v += t.Amp * math.Sin(t.Freq*s+t.Phase)
	}
	return v
}
