package game

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/lixenwraith/neon-rails/parameter"
)

var rivalNames = []string{"Bogus Bill", "Cher Stone", "Rad Ranger", "Lil Byte"}

// Rival is a computer-driven car that follows the track at its own pace
type Rival struct {
	Name     string
	S        float64
	Speed    float64
	Lane     int
	Damage   float64
	Credits  int
	laneHold float64
	offset   float64
}

func newRivals(n int, rng *rand.Rand) []Rival {
	rivals := make([]Rival, n)
	for i := range rivals {
		rivals[i] = Rival{
			Name:   rivalNames[i%len(rivalNames)],
			Speed:  parameter.RivalSpeedBase + rng.Float64()*parameter.RivalSpeedJitter,
			offset: math.Mod(float64(i)*0.35+0.2, 1),
		}
	}
	return rivals
}

// resetRivals spreads rivals ahead of the start line
func (s *State) resetRivals() {
	span := 20.0
	if s.Circuit != nil {
		span = s.Circuit.Length()
	}
	for i := range s.Rivals {
		r := &s.Rivals[i]
		r.S = r.offset * span
		r.Lane = RandomLane(s.rng)
		r.Damage = 0
		r.Credits = 0
		r.laneHold = s.rivalHold()
	}
}

func (s *State) rivalHold() float64 {
	return parameter.RivalLaneHoldMin + s.rng.Float64()*parameter.RivalLaneHoldJitter
}

// updateRivals advances rivals and resolves bumps with the player
func (s *State) updateRivals(dt float64) {
	p := &s.Player
	for i := range s.Rivals {
		r := &s.Rivals[i]
		r.S += r.Speed * dt
		r.laneHold -= dt
		if r.laneHold <= 0 {
			r.Lane = RandomLane(s.rng)
			r.laneHold = s.rivalHold()
		}

		ds := p.S - r.S
		if math.Abs(ds) >= parameter.BumpArc || math.Abs(float64(r.Lane)-p.LaneSmooth) >= parameter.ObstacleHitLane {
			continue
		}
		if ds >= 0 {
			p.S += parameter.BumpPush
		} else {
			p.S -= parameter.BumpPush
		}
		r.Damage = clamp(r.Damage+parameter.BumpDamage, 0, 1)
		s.setStatus(parameter.TextBump, parameter.StatusShortTTL)
		s.damagePlayer(parameter.BumpDamage)
		if s.Phase != PhaseRacing {
			return
		}
	}
}

// Standing is one row of the race order
type Standing struct {
	Name     string
	Position int
	Metric   float64 // laps on circuits, arc distance otherwise
	Damage   float64
	Credits  int
	Player   bool
}

// Standings orders the player and rivals by race progress, leader first
func (s *State) Standings() []Standing {
	rows := make([]Standing, 0, len(s.Rivals)+1)
	rows = append(rows, Standing{
		Name:    "YOU",
		Metric:  s.playerMetric(),
		Damage:  s.Player.Damage,
		Credits: s.Player.Credits,
		Player:  true,
	})
	for i := range s.Rivals {
		r := &s.Rivals[i]
		rows = append(rows, Standing{
			Name:    r.Name,
			Metric:  s.arcMetric(r.S),
			Damage:  r.Damage,
			Credits: r.Credits,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Metric > rows[j].Metric })
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

func (s *State) playerMetric() float64 {
	if s.Circuit == nil {
		return s.Player.S
	}
	return float64(s.Laps.Current-1) + s.Progress()
}

func (s *State) arcMetric(at float64) float64 {
	if s.Circuit == nil {
		return at
	}
	return at / s.Circuit.Length()
}
