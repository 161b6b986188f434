package game

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/neon-rails/event"
	"github.com/lixenwraith/neon-rails/parameter"
)

// Apply folds one drained event into the state
// Quit, Resize and Reload are handled by the caller and ignored here
func (s *State) Apply(ev event.GameEvent) {
	switch ev.Kind {
	case event.Start:
		if s.Phase == PhaseSplash || s.Phase == PhaseFinished {
			s.StartRace()
		}

	case event.Restart:
		s.ResetRace()

	case event.Pause:
		switch s.Phase {
		case PhaseRacing:
			s.Phase = PhasePaused
			s.Status = Status{Message: parameter.TextPaused}
		case PhasePaused:
			s.Phase = PhaseRacing
			s.setStatus(parameter.TextResumed, parameter.StatusShortTTL)
		}

	case event.LaneChange:
		if s.Phase != PhaseRacing {
			return
		}
		lane := s.Player.Lane + ev.Delta
		s.Player.Lane = max(parameter.LaneMin, min(parameter.LaneMax, lane))

	case event.Throttle:
		if s.Phase != PhaseRacing || ev.Delta == 0 {
			return
		}
		p := &s.Player
		p.TargetSpeed = clamp(p.TargetSpeed+float64(ev.Delta)*s.Tuning.ThrottleStep, s.Tuning.SpeedMin, s.Tuning.SpeedMax)
		if ev.Delta > 0 {
			s.setStatus(parameter.TextThrottleUp, parameter.StatusShortTTL)
		} else {
			s.setStatus(parameter.TextThrottleDown, parameter.StatusShortTTL)
		}
	}
}

// Update advances the simulation by dt seconds
func (s *State) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.tickStatus(dt)

	switch s.Phase {
	case PhaseSplash:
		s.SplashAge += dt
		return
	case PhaseRacing:
	default:
		return
	}

	s.RaceTime += dt
	s.updateLane(dt)

	p := &s.Player
	p.Speed += (p.TargetSpeed - p.Speed) * parameter.SpeedResponse * dt
	p.Speed = clamp(p.Speed, 0, s.Tuning.SpeedMax)
	p.S += p.Speed * dt

	s.recycleObstacles()
	if i := s.hitObstacle(); i >= 0 {
		s.hit(i)
		if s.Phase != PhaseRacing {
			return
		}
	}

	s.updateRivals(dt)
	if s.Phase != PhaseRacing {
		return
	}

	if s.Circuit == nil {
		p.Score += p.Speed * dt * parameter.ScorePerUnit
		return
	}

	s.collectPickups()
	s.updateLaps()
	p.Score = float64(p.Credits)*parameter.PickupScore + float64(s.Laps.Current-1)*parameter.LapScore
}

func (s *State) tickStatus(dt float64) {
	if s.Status.Timer <= 0 {
		return
	}
	s.Status.Timer -= dt
	if s.Status.Timer <= 0 {
		s.Status = Status{Message: s.idleMessage()}
	}
}

func (s *State) idleMessage() string {
	switch s.Phase {
	case PhaseSplash:
		return parameter.TextSplashPrompt
	case PhasePaused:
		return parameter.TextPaused
	case PhaseCrashed:
		return parameter.TextCrash
	case PhaseFinished:
		return parameter.TextFinished
	}
	return parameter.TextDefaultStatus
}

// updateLane springs LaneSmooth toward the target lane
func (s *State) updateLane(dt float64) {
	if dt == 0 {
		return
	}
	if dt != s.springDt {
		s.spring = harmonica.NewSpring(dt, s.Tuning.LaneSpringFreq, s.Tuning.LaneSpringDamp)
		s.springDt = dt
	}
	p := &s.Player
	p.LaneSmooth, p.laneVel = s.spring.Update(p.LaneSmooth, p.laneVel, float64(p.Lane))
}

// hit resolves an obstacle collision: open tracks end the run, circuits take damage
func (s *State) hit(i int) {
	if s.Circuit == nil {
		s.crash()
		return
	}
	// Knock the obstacle out so a slow car is not hit every tick
	RecycleObstacle(&s.Obstacles[i], math.Inf(1), s.rng)
	s.Player.Speed *= parameter.HitSpeedFactor
	s.setStatus(parameter.TextHit, parameter.StatusShortTTL)
	s.cue(CueHit)
	s.damagePlayer(parameter.ObstacleDamage)
}

func (s *State) crash() {
	p := &s.Player
	p.Alive = false
	p.Speed = 0
	p.Score = math.Max(0, p.Score-parameter.CrashScorePenalty)
	s.Phase = PhaseCrashed
	s.Status = Status{Message: parameter.TextCrash}
	s.cue(CueCrash)
}

func (s *State) damagePlayer(amount float64) {
	p := &s.Player
	p.Damage = clamp(p.Damage+amount, 0, 1)
	if p.Damage < 1 {
		return
	}
	if s.Circuit == nil {
		s.crash()
		return
	}
	s.respawn()
}

// respawn puts a wrecked car back on the start line of its current loop
func (s *State) respawn() {
	p := &s.Player
	p.Damage = parameter.RespawnDamage
	p.Speed = 0
	p.TargetSpeed = parameter.CrashSpeedAfter
	p.Credits = max(0, p.Credits-1)
	p.S = s.lapStart(p.S)
	p.Lane = 0
	p.LaneSmooth = 0
	p.laneVel = 0
	s.setStatus(parameter.TextWrecked, parameter.StatusDefaultTTL)
	s.cue(CueCrash)

	// The teleport would otherwise read as a lap
	s.lapCounter.Reset(s.Progress())
}

func (s *State) updateLaps() {
	if !s.lapCounter.Observe(s.Progress()) {
		return
	}
	lap := s.RaceTime - s.Laps.Started
	s.Laps.Last = lap
	if s.Laps.Best == 0 || lap < s.Laps.Best {
		s.Laps.Best = lap
	}
	s.Laps.Started = s.RaceTime

	s.Laps.Current++
	if s.Laps.Current > s.Laps.Total {
		s.Phase = PhaseFinished
		s.setStatus(parameter.TextFinished, parameter.StatusFinishTTL)
		s.cue(CueFinish)
		return
	}
	s.setStatus(fmt.Sprintf(parameter.TextLap, s.Laps.Current, s.Laps.Total), parameter.StatusLapTTL)
	s.cue(CueLap)
}
