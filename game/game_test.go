package game

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lixenwraith/neon-rails/event"
	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/track"
)

func newWaveState(t *testing.T, tune Tuning) *State {
	t.Helper()
	return NewState(Options{Curve: track.DefaultWave(), Tuning: tune, Seed: 7})
}

func newCircuitState(t *testing.T) *State {
	t.Helper()
	circuit, err := track.NewCircuit(track.CircuitLayout, parameter.CircuitScale)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	tune := DefaultTuning()
	tune.ObstacleCount = 0
	tune.RivalCount = 0
	s := NewState(Options{Circuit: circuit, Tuning: tune, Seed: 7})
	s.StartRace()
	s.Player.TargetSpeed = 0
	return s
}

func TestRecycleObstacleProperty(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		trigger := rng.Float64() * 1000
		o := Obstacle{S: trigger, Lane: 0}
		playerS := trigger + parameter.ObstacleRecycleBehind + 1e-6 + rng.Float64()*10

		if !RecycleObstacle(&o, playerS, rng) {
			t.Fatalf("seed %d: expected recycle at player %f, obstacle %f", seed, playerS, trigger)
		}
		if o.S < trigger+parameter.ObstacleRecycleMin {
			t.Errorf("seed %d: expected new S >= %f, got %f", seed, trigger+parameter.ObstacleRecycleMin, o.S)
		}
		if o.S > trigger+parameter.ObstacleRecycleMin+parameter.ObstacleRecycleJitter {
			t.Errorf("seed %d: expected new S <= %f, got %f", seed, trigger+100, o.S)
		}
		if !slices.Contains(Lanes[:], o.Lane) {
			t.Errorf("seed %d: expected lane in %v, got %d", seed, Lanes, o.Lane)
		}
	}
}

func TestRecycleObstacleKeepsNearby(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tests := []struct {
		name    string
		s       float64
		playerS float64
		want    bool
	}{
		{"ahead", 10, 5, false},
		{"beside", 5, 5, false},
		{"at threshold", 3, 5, false},
		{"just behind threshold", 2.999, 5, true},
		{"far behind", -50, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Obstacle{S: tt.s}
			if got := RecycleObstacle(&o, tt.playerS, rng); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if !tt.want && o.S != tt.s {
				t.Errorf("Expected S unchanged %f, got %f", tt.s, o.S)
			}
		})
	}
}

func TestObstacleLayout(t *testing.T) {
	s := newWaveState(t, DefaultTuning())
	if len(s.Obstacles) != parameter.ObstacleCount {
		t.Fatalf("Expected %d obstacles, got %d", parameter.ObstacleCount, len(s.Obstacles))
	}
	check := func(jitter float64) {
		for i, o := range s.Obstacles {
			base := parameter.ObstacleBase + float64(i)*parameter.ObstacleSpacing
			if o.S < base || o.S >= base+jitter {
				t.Errorf("obstacle %d: expected S in [%f,%f), got %f", i, base, base+jitter, o.S)
			}
		}
	}
	check(parameter.ObstacleJitter)
	s.ResetRace()
	check(parameter.ObstacleResetJitter)
}

func TestSeedDeterminism(t *testing.T) {
	a := newWaveState(t, DefaultTuning())
	b := newWaveState(t, DefaultTuning())
	if !slices.Equal(a.Obstacles, b.Obstacles) {
		t.Error("Expected identical obstacles for identical seeds")
	}
}

func TestPhaseTransitions(t *testing.T) {
	s := newWaveState(t, DefaultTuning())
	if s.Phase != PhaseSplash {
		t.Fatalf("Expected splash, got %s", s.Phase)
	}

	s.Apply(event.GameEvent{Kind: event.LaneChange, Delta: 1})
	if s.Player.Lane != 0 {
		t.Errorf("Expected lane ignored on splash, got %d", s.Player.Lane)
	}

	s.Apply(event.GameEvent{Kind: event.Start})
	if s.Phase != PhaseRacing {
		t.Fatalf("Expected racing, got %s", s.Phase)
	}
	if cues := s.TakeCues(); !slices.Contains(cues, CueStart) {
		t.Errorf("Expected start cue, got %v", cues)
	}

	s.Apply(event.GameEvent{Kind: event.Pause})
	if s.Phase != PhasePaused {
		t.Errorf("Expected paused, got %s", s.Phase)
	}
	before := s.Player.S
	s.Update(0.5)
	if s.Player.S != before {
		t.Errorf("Expected no motion while paused, got %f -> %f", before, s.Player.S)
	}

	s.Apply(event.GameEvent{Kind: event.Pause})
	if s.Phase != PhaseRacing {
		t.Errorf("Expected racing after resume, got %s", s.Phase)
	}
}

func TestLaneAndThrottleClamp(t *testing.T) {
	s := newWaveState(t, DefaultTuning())
	s.StartRace()

	for range 5 {
		s.Apply(event.GameEvent{Kind: event.LaneChange, Delta: -1})
	}
	if s.Player.Lane != parameter.LaneMin {
		t.Errorf("Expected lane %d, got %d", parameter.LaneMin, s.Player.Lane)
	}
	for range 5 {
		s.Apply(event.GameEvent{Kind: event.LaneChange, Delta: 1})
	}
	if s.Player.Lane != parameter.LaneMax {
		t.Errorf("Expected lane %d, got %d", parameter.LaneMax, s.Player.Lane)
	}

	for range 100 {
		s.Apply(event.GameEvent{Kind: event.Throttle, Delta: 1})
	}
	if s.Player.TargetSpeed != parameter.SpeedMax {
		t.Errorf("Expected target %f, got %f", parameter.SpeedMax, s.Player.TargetSpeed)
	}
	for range 100 {
		s.Apply(event.GameEvent{Kind: event.Throttle, Delta: -1})
	}
	if s.Player.TargetSpeed != parameter.SpeedMin {
		t.Errorf("Expected target %f, got %f", parameter.SpeedMin, s.Player.TargetSpeed)
	}
}

func TestLaneSpringSettles(t *testing.T) {
	tune := DefaultTuning()
	tune.ObstacleCount = 0
	tune.RivalCount = 0
	s := newWaveState(t, tune)
	s.StartRace()
	s.Apply(event.GameEvent{Kind: event.LaneChange, Delta: 1})

	// Varying dt rebuilds the spring
	for i := range 120 {
		dt := 1.0 / 60
		if i%2 == 0 {
			dt = 1.0 / 30
		}
		s.Update(dt)
	}
	if math.Abs(s.Player.LaneSmooth-1) > 1e-2 {
		t.Errorf("Expected smoothed lane near 1, got %f", s.Player.LaneSmooth)
	}
}

func TestWaveCrash(t *testing.T) {
	tune := DefaultTuning()
	tune.ObstacleCount = 1
	tune.RivalCount = 0
	s := newWaveState(t, tune)
	s.StartRace()
	s.TakeCues()
	s.Obstacles[0] = Obstacle{S: 0.1, Lane: 0}

	s.Update(0.01)
	if s.Phase != PhaseCrashed {
		t.Fatalf("Expected crashed, got %s", s.Phase)
	}
	if s.Player.Alive {
		t.Error("Expected player not alive")
	}
	if cues := s.TakeCues(); !slices.Contains(cues, CueCrash) {
		t.Errorf("Expected crash cue, got %v", cues)
	}

	s.Apply(event.GameEvent{Kind: event.Restart})
	if s.Phase != PhaseRacing || !s.Player.Alive {
		t.Errorf("Expected racing and alive after restart, got %s alive=%v", s.Phase, s.Player.Alive)
	}
}

func TestWaveScoreAccumulates(t *testing.T) {
	tune := DefaultTuning()
	tune.ObstacleCount = 0
	tune.RivalCount = 0
	s := newWaveState(t, tune)
	s.StartRace()
	for range 60 {
		s.Update(1.0 / 60)
	}
	if s.Player.Score <= 0 {
		t.Errorf("Expected positive score, got %f", s.Player.Score)
	}
	if s.Player.S <= 0 {
		t.Errorf("Expected forward motion, got %f", s.Player.S)
	}
}

func TestCircuitLaps(t *testing.T) {
	s := newCircuitState(t)
	l := s.Circuit.Length()

	s.Player.S = 0.5 * l
	s.Update(0.01)
	s.Player.S = 0.95 * l
	s.Update(0.01)
	if s.Laps.Current != 1 {
		t.Fatalf("Expected lap 1, got %d", s.Laps.Current)
	}

	s.Player.S = 1.02 * l
	s.Update(0.01)
	if s.Laps.Current != 2 {
		t.Fatalf("Expected lap 2, got %d", s.Laps.Current)
	}
	if want := parameter.LapScore; s.Player.Score != want {
		t.Errorf("Expected score %f, got %f", want, s.Player.Score)
	}
	if math.Abs(s.Laps.Last-0.03) > 1e-9 || s.Laps.Best != s.Laps.Last {
		t.Errorf("Expected lap time 0.03, got last %f best %f", s.Laps.Last, s.Laps.Best)
	}

	for lap := 2; lap <= s.Laps.Total; lap++ {
		s.Player.S = (float64(lap-1) + 0.5) * l
		s.Update(0.01)
		s.Player.S = (float64(lap-1) + 0.95) * l
		s.Update(0.01)
		s.Player.S = (float64(lap) + 0.02) * l
		s.Update(0.01)
	}
	if s.Phase != PhaseFinished {
		t.Errorf("Expected finished, got %s (lap %d)", s.Phase, s.Laps.Current)
	}
	if cues := s.TakeCues(); !slices.Contains(cues, CueFinish) {
		t.Errorf("Expected finish cue, got %v", cues)
	}
}

func TestCircuitRespawnNotCountedAsLap(t *testing.T) {
	s := newCircuitState(t)
	l := s.Circuit.Length()

	s.Player.S = 0.5 * l
	s.Update(0.01)
	s.Player.S = 0.9 * l
	s.Update(0.01)
	s.Player.Credits = 2

	s.damagePlayer(1)
	if s.Player.Damage != parameter.RespawnDamage {
		t.Errorf("Expected damage %f, got %f", parameter.RespawnDamage, s.Player.Damage)
	}
	if s.Player.Credits != 1 {
		t.Errorf("Expected one credit lost, got %d", s.Player.Credits)
	}
	if s.Player.S != 0 {
		t.Errorf("Expected respawn at loop start, got %f", s.Player.S)
	}

	s.Update(0.01)
	if s.Laps.Current != 1 {
		t.Errorf("Expected lap 1 after respawn, got %d", s.Laps.Current)
	}
	if s.Phase != PhaseRacing {
		t.Errorf("Expected racing after respawn, got %s", s.Phase)
	}
}

func TestCircuitPickup(t *testing.T) {
	s := newCircuitState(t)
	if len(s.Pickups) < 2 {
		t.Fatalf("Expected pickups on circuit, got %d", len(s.Pickups))
	}
	target := s.Pickups[0]
	s.Player.Lane = target.Lane
	s.Player.LaneSmooth = float64(target.Lane)
	s.Player.S = target.S

	s.Update(0.001)
	if s.Player.Credits != 1 {
		t.Fatalf("Expected 1 credit, got %d", s.Player.Credits)
	}
	if s.Pickups[0].Active {
		t.Error("Expected pickup consumed")
	}
	if want := parameter.PickupScore; s.Player.Score != want {
		t.Errorf("Expected score %f, got %f", want, s.Player.Score)
	}

	// Collecting the last active drop restores all of them
	for i := 1; i < len(s.Pickups); i++ {
		s.Pickups[i].Active = false
	}
	s.Pickups[0].Active = true
	s.Update(0.001)
	if n := s.ActivePickups(); n != len(s.Pickups) {
		t.Errorf("Expected all %d pickups respawned, got %d", len(s.Pickups), n)
	}
}

func TestStandingsOrder(t *testing.T) {
	tune := DefaultTuning()
	tune.ObstacleCount = 0
	s := newWaveState(t, tune)
	s.StartRace()
	s.Player.S = 100

	rows := s.Standings()
	if len(rows) != tune.RivalCount+1 {
		t.Fatalf("Expected %d rows, got %d", tune.RivalCount+1, len(rows))
	}
	if !rows[0].Player || rows[0].Position != 1 {
		t.Errorf("Expected player leading, got %+v", rows[0])
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Metric > rows[i-1].Metric {
			t.Errorf("Expected descending metric at %d, got %f > %f", i, rows[i].Metric, rows[i-1].Metric)
		}
	}
}

func TestRivalBump(t *testing.T) {
	tune := DefaultTuning()
	tune.ObstacleCount = 0
	tune.RivalCount = 1
	s := newWaveState(t, tune)
	s.StartRace()
	s.Rivals[0].S = 0.2
	s.Rivals[0].Lane = 0
	s.Rivals[0].Speed = 0
	s.Rivals[0].laneHold = 100

	s.Update(0.001)
	if s.Player.Damage != parameter.BumpDamage {
		t.Errorf("Expected player damage %f, got %f", parameter.BumpDamage, s.Player.Damage)
	}
	if s.Rivals[0].Damage != parameter.BumpDamage {
		t.Errorf("Expected rival damage %f, got %f", parameter.BumpDamage, s.Rivals[0].Damage)
	}
	if s.Status.Message != parameter.TextBump {
		t.Errorf("Expected %q, got %q", parameter.TextBump, s.Status.Message)
	}
}

func TestStatusExpires(t *testing.T) {
	s := newWaveState(t, DefaultTuning())
	s.StartRace()
	s.Apply(event.GameEvent{Kind: event.Pause})
	s.Apply(event.GameEvent{Kind: event.Pause})
	if s.Status.Message != parameter.TextResumed {
		t.Fatalf("Expected %q, got %q", parameter.TextResumed, s.Status.Message)
	}
	s.tickStatus(parameter.StatusShortTTL + 0.01)
	if s.Status.Message != parameter.TextDefaultStatus {
		t.Errorf("Expected %q, got %q", parameter.TextDefaultStatus, s.Status.Message)
	}
}

func TestApplyTuningCounts(t *testing.T) {
	s := newWaveState(t, DefaultTuning())
	s.StartRace()

	tune := DefaultTuning()
	tune.ObstacleCount = 6
	tune.RivalCount = 3
	tune.Laps = 4
	s.ApplyTuning(tune)

	if len(s.Obstacles) != parameter.ObstacleCount {
		t.Errorf("Expected %d obstacles until restart, got %d", parameter.ObstacleCount, len(s.Obstacles))
	}

	s.Apply(event.GameEvent{Kind: event.Restart})
	if len(s.Obstacles) != 6 || len(s.Rivals) != 3 || s.Laps.Total != 4 {
		t.Errorf("Expected 6 obstacles 3 rivals 4 laps, got %d %d %d", len(s.Obstacles), len(s.Rivals), s.Laps.Total)
	}
	for i, o := range s.Obstacles {
		if o.S <= 0 {
			t.Errorf("Expected obstacle %d ahead of the start, got S=%f", i, o.S)
		}
	}
	for i, r := range s.Rivals {
		if r.Name == "" {
			t.Errorf("Expected rival %d named", i)
		}
	}
}
