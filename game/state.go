// Package game holds the race simulation: the player riding the track,
// obstacles, pickups, rival cars, laps and the race phase machine.
//
// State is owned by the frame loop. It is mutated only by Apply (events
// drained at tick start) and Update, never concurrently.
package game

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/neon-rails/camera"
	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/track"
	"github.com/lixenwraith/neon-rails/vmath"
)

// Phase is the race state machine position
type Phase uint8

const (
	PhaseSplash Phase = iota
	PhaseRacing
	PhasePaused
	PhaseCrashed
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseRacing:
		return "racing"
	case PhasePaused:
		return "paused"
	case PhaseCrashed:
		return "crashed"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Cue is a one-shot notification for the audio layer, collected per update
type Cue uint8

const (
	CueStart Cue = iota
	CueCrash
	CueHit
	CuePickup
	CueLap
	CueFinish
)

// Player is the car the camera chases
type Player struct {
	S           float64 // arc position, unbounded
	Speed       float64 // arc units per second
	TargetSpeed float64
	Lane        int     // target lane index
	LaneSmooth  float64 // spring-smoothed lane, drives rendering and collision
	laneVel     float64
	Damage      float64 // 0..1
	Alive       bool
	Credits     int
	Score       float64
}

// Status is the transient HUD message
type Status struct {
	Message string
	Timer   float64
}

// Laps tracks circuit progress; Current starts at 1
type Laps struct {
	Current int
	Total   int
	Started float64 // race time the current lap began
	Last    float64 // seconds, 0 until a lap completes
	Best    float64
}

// Options configures a new State
type Options struct {
	Curve   track.Curve
	Circuit *track.Polyline // nil for open tracks
	Tuning  Tuning
	Seed    uint64
}

// State is the full race simulation
type State struct {
	Curve   track.Curve
	Circuit *track.Polyline
	Tuning  Tuning

	Phase     Phase
	Player    Player
	Obstacles []Obstacle
	Pickups   []Pickup
	Rivals    []Rival
	Laps      Laps
	Status    Status
	RaceTime  float64
	SplashAge float64

	rng        *rand.Rand
	lapCounter track.LapCounter
	spring     harmonica.Spring
	springDt   float64
	cues       []Cue
}

// NewState creates a race waiting on the splash screen
func NewState(opts Options) *State {
	s := &State{
		Curve:   opts.Curve,
		Circuit: opts.Circuit,
		Tuning:  opts.Tuning,
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	if s.Curve == nil && s.Circuit != nil {
		s.Curve = s.Circuit
	}

	s.fitCounts()
	s.Pickups = s.newPickups()

	s.enterSplash()
	return s
}

// IsCircuit reports whether the track is a closed lap circuit
func (s *State) IsCircuit() bool {
	return s.Circuit != nil
}

// Rand exposes the seeded source for collaborators that need repeatable randomness
func (s *State) Rand() *rand.Rand {
	return s.rng
}

// TakeCues returns and clears cues raised since the last call
func (s *State) TakeCues() []Cue {
	c := s.cues
	s.cues = s.cues[:0:0]
	return c
}

func (s *State) cue(c Cue) {
	s.cues = append(s.cues, c)
}

// SetStatus shows msg for ttl seconds; ttl 0 keeps it until replaced
func (s *State) SetStatus(msg string, ttl float64) {
	s.setStatus(msg, ttl)
}

func (s *State) setStatus(msg string, ttl float64) {
	s.Status = Status{Message: msg, Timer: ttl}
}

func (s *State) enterSplash() {
	s.Phase = PhaseSplash
	s.SplashAge = 0
	s.Status = Status{Message: parameter.TextSplashPrompt}
	s.Laps = Laps{Current: 1, Total: s.Tuning.Laps}
	s.Player = Player{}
}

// ApplyTuning swaps the tuning table
// Obstacle and rival counts follow at the next race start; on the splash screen they apply now
func (s *State) ApplyTuning(t Tuning) {
	s.Tuning = t
	if s.Phase == PhaseSplash {
		s.fitCounts()
		s.Laps.Total = t.Laps
	}
}

// fitCounts sizes obstacles and rivals to the tuning counts
func (s *State) fitCounts() {
	if n := s.Tuning.ObstacleCount; s.Obstacles == nil || len(s.Obstacles) != n {
		s.Obstacles = make([]Obstacle, n)
		for i := range s.Obstacles {
			s.Obstacles[i] = newObstacle(i, parameter.ObstacleJitter, s.rng)
		}
	}
	if n := s.Tuning.RivalCount; s.Rivals == nil || len(s.Rivals) != n {
		s.Rivals = newRivals(n, s.rng)
	}
}

// StartRace leaves the splash (or a finished race) and resets everything
func (s *State) StartRace() {
	s.ResetRace()
}

// ResetRace puts player, obstacles, rivals and laps back at the start line
func (s *State) ResetRace() {
	s.Phase = PhaseRacing
	s.RaceTime = 0
	s.Laps = Laps{Current: 1, Total: s.Tuning.Laps}
	s.Player = Player{TargetSpeed: s.Tuning.SpeedStart, Alive: true}

	s.fitCounts()
	for i := range s.Obstacles {
		s.Obstacles[i] = newObstacle(i, parameter.ObstacleResetJitter, s.rng)
	}
	for i := range s.Pickups {
		s.Pickups[i].Active = true
	}
	s.resetRivals()

	if s.Circuit != nil {
		s.lapCounter = track.LapCounter{Threshold: s.Tuning.LapDropThreshold}
		s.lapCounter.Reset(s.Circuit.Project(s.PlayerWorld()))
	}

	s.setStatus(parameter.TextRaceStart, parameter.StatusRaceTTL)
	s.cue(CueStart)
}

// Frame returns the curve frame at arc position at
func (s *State) Frame(at float64) camera.Frame {
	return camera.ComputeFrame(s.Curve, at, parameter.FrameEpsilon)
}

// LanePoint returns the world point at arc position at, displaced lane lanes along the normal
func (s *State) LanePoint(at, lane float64) vmath.Vec3F {
	return s.Frame(at).Offset(lane*s.Tuning.LaneOffset, 0, 0)
}

// PlayerWorld returns the player's world position
func (s *State) PlayerWorld() vmath.Vec3F {
	return s.LanePoint(s.Player.S, s.Player.LaneSmooth)
}

// Progress returns lap-relative progress in [0,1) on circuits, 0 otherwise
func (s *State) Progress() float64 {
	if s.Circuit == nil {
		return 0
	}
	return s.Circuit.Project(s.PlayerWorld())
}

// lapStart returns the arc position of the start line of the current loop
func (s *State) lapStart(at float64) float64 {
	if s.Circuit == nil {
		return 0
	}
	l := s.Circuit.Length()
	return math.Floor(at/l) * l
}
