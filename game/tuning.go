package game

import "github.com/lixenwraith/neon-rails/parameter"

// Tuning holds the gameplay values that config may override
type Tuning struct {
	LaneOffset       float64 `toml:"lane_offset" yaml:"lane_offset"`
	LaneSpringFreq   float64 `toml:"lane_spring_frequency" yaml:"lane_spring_frequency"`
	LaneSpringDamp   float64 `toml:"lane_spring_damping" yaml:"lane_spring_damping"`
	SpeedStart       float64 `toml:"speed_start" yaml:"speed_start"`
	SpeedMin         float64 `toml:"speed_min" yaml:"speed_min"`
	SpeedMax         float64 `toml:"speed_max" yaml:"speed_max"`
	ThrottleStep     float64 `toml:"throttle_step" yaml:"throttle_step"`
	ObstacleCount    int     `toml:"obstacle_count" yaml:"obstacle_count"`
	Laps             int     `toml:"laps" yaml:"laps"`
	RivalCount       int     `toml:"rivals" yaml:"rivals"`
	LapDropThreshold float64 `toml:"lap_drop_threshold" yaml:"lap_drop_threshold"`
}

// DefaultTuning returns the stock values
func DefaultTuning() Tuning {
	return Tuning{
		LaneOffset:       parameter.LaneOffset,
		LaneSpringFreq:   parameter.LaneSpringFrequency,
		LaneSpringDamp:   parameter.LaneSpringDamping,
		SpeedStart:       parameter.SpeedStart,
		SpeedMin:         parameter.SpeedMin,
		SpeedMax:         parameter.SpeedMax,
		ThrottleStep:     parameter.ThrottleStep,
		ObstacleCount:    parameter.ObstacleCount,
		Laps:             parameter.RaceLaps,
		RivalCount:       parameter.RivalCount,
		LapDropThreshold: parameter.LapDropThreshold,
	}
}
