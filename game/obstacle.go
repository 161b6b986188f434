package game

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/neon-rails/parameter"
)

// Lanes are the discrete lane indices obstacles and rivals occupy
var Lanes = [3]int{-1, 0, 1}

// Obstacle is a block sitting in one lane at an arc position
type Obstacle struct {
	S    float64
	Lane int
}

// Pickup is a GPU drop on a circuit, fixed to one loop position
type Pickup struct {
	S      float64 // arc position within one loop
	Lane   int
	Active bool
}

// RandomLane picks a lane uniformly
func RandomLane(rng *rand.Rand) int {
	return Lanes[rng.IntN(len(Lanes))]
}

func newObstacle(i int, jitter float64, rng *rand.Rand) Obstacle {
	return Obstacle{
		S:    parameter.ObstacleBase + float64(i)*parameter.ObstacleSpacing + rng.Float64()*jitter,
		Lane: RandomLane(rng),
	}
}

// RecycleObstacle moves an obstacle that fell behind playerS far ahead of its
// old position and reports whether it moved
func RecycleObstacle(o *Obstacle, playerS float64, rng *rand.Rand) bool {
	if o.S >= playerS-parameter.ObstacleRecycleBehind {
		return false
	}
	o.S += parameter.ObstacleRecycleMin + rng.Float64()*parameter.ObstacleRecycleJitter
	o.Lane = RandomLane(rng)
	return true
}

func (s *State) recycleObstacles() {
	for i := range s.Obstacles {
		RecycleObstacle(&s.Obstacles[i], s.Player.S, s.rng)
	}
}

// hitObstacle returns the index of the first obstacle the player overlaps, or -1
func (s *State) hitObstacle() int {
	p := &s.Player
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if math.Abs(o.S-p.S) < parameter.ObstacleHitArc &&
			math.Abs(float64(o.Lane)-p.LaneSmooth) < parameter.ObstacleHitLane {
			return i
		}
	}
	return -1
}

// newPickups lays drops around the circuit, cycling through the lanes
func (s *State) newPickups() []Pickup {
	if s.Circuit == nil {
		return nil
	}
	n := int(s.Circuit.Length() / parameter.CircuitPickupSpacing)
	pickups := make([]Pickup, 0, n)
	for i := 1; i <= n; i++ {
		pickups = append(pickups, Pickup{
			S:      float64(i)*parameter.CircuitPickupSpacing - parameter.CircuitPickupSpacing/2,
			Lane:   Lanes[i%len(Lanes)],
			Active: true,
		})
	}
	return pickups
}

// ActivePickups counts drops still on the track
func (s *State) ActivePickups() int {
	n := 0
	for i := range s.Pickups {
		if s.Pickups[i].Active {
			n++
		}
	}
	return n
}

// collectPickups grabs any active drop under the player
func (s *State) collectPickups() {
	if s.Circuit == nil || len(s.Pickups) == 0 {
		return
	}
	p := &s.Player
	loopS := p.S - s.lapStart(p.S)
	for i := range s.Pickups {
		d := &s.Pickups[i]
		if !d.Active {
			continue
		}
		if math.Abs(d.S-loopS) >= parameter.PickupHitArc ||
			math.Abs(float64(d.Lane)-p.LaneSmooth) >= parameter.ObstacleHitLane {
			continue
		}
		d.Active = false
		p.Credits++
		p.TargetSpeed = clamp(p.TargetSpeed+parameter.PickupSpeedBonus, s.Tuning.SpeedMin, s.Tuning.SpeedMax+1)
		s.setStatus(parameter.TextPickup, 1.5)
		s.cue(CuePickup)

		if s.ActivePickups() == 0 {
			for j := range s.Pickups {
				s.Pickups[j].Active = true
			}
			s.setStatus(parameter.TextDropsRespawn, 1.8)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
