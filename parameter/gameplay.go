package parameter

// Lanes
const (
	// LaneOffset is the world distance between adjacent lanes along the frame normal
	LaneOffset = 1.6

	// LaneMin and LaneMax bound the target lane index
	LaneMin = -1
	LaneMax = 1

	// LaneSpringFrequency is the angular frequency of the lane smoothing spring
	LaneSpringFrequency = 9.0

	// LaneSpringDamping is the damping ratio of the lane smoothing spring (1 = critical)
	LaneSpringDamping = 1.0
)

// Player Speed (arc units per second)
const (
	SpeedStart      = 4.0
	SpeedMin        = 1.0
	SpeedMax        = 14.0
	ThrottleStep    = 0.7
	SpeedResponse   = 0.8
	CrashSpeedAfter = 3.5
)

// Obstacles
const (
	// ObstacleCount is the number of obstacles kept alive along the track
	ObstacleCount = 80

	// ObstacleBase is the arc position of the first obstacle
	ObstacleBase = 5.0

	// ObstacleSpacing is the arc spacing between consecutive obstacles at creation
	ObstacleSpacing = 1.2

	// ObstacleJitter is the random spread added at creation
	ObstacleJitter = 3.0

	// ObstacleResetJitter is the random spread added on reset
	ObstacleResetJitter = 4.0

	// ObstacleRecycleBehind is the distance behind the player that triggers recycling
	ObstacleRecycleBehind = 2.0

	// ObstacleRecycleMin is the minimum forward jump of a recycled obstacle
	ObstacleRecycleMin = 85.0

	// ObstacleRecycleJitter is the random spread added to the forward jump
	ObstacleRecycleJitter = 15.0

	// ObstacleHitArc is the arc half-width of an obstacle hit box
	ObstacleHitArc = 0.6

	// ObstacleHitLane is the smoothed-lane half-width of an obstacle hit box
	ObstacleHitLane = 0.5
)

// Race
const (
	// LapDropThreshold is the progress drop between two samples that counts as a new lap
	LapDropThreshold = 0.6

	// RaceLaps is the number of laps in a circuit race
	RaceLaps = 3

	// RivalCount is the number of rival cars
	RivalCount = 2

	// RivalSpeedBase and RivalSpeedJitter give rival speeds in arc units per second
	RivalSpeedBase   = 3.6
	RivalSpeedJitter = 1.2

	// ScorePerUnit is the score awarded per arc unit travelled
	ScorePerUnit = 10.0

	// CrashScorePenalty is subtracted from the score on crash
	CrashScorePenalty = 100.0
)

// Circuit Track
const (
	// CircuitScale converts circuit layout units to world units
	CircuitScale = 8.0

	// CircuitPickupSpacing is the arc spacing of GPU pickups on the circuit (world units)
	CircuitPickupSpacing = 24.0

	// PickupHitArc is the arc half-width for collecting a pickup
	PickupHitArc = 0.8

	// PickupSpeedBonus raises target speed on pickup
	PickupSpeedBonus = 0.4

	// PickupScore is awarded per pickup collected
	PickupScore = 100.0

	// LapScore is awarded per completed lap
	LapScore = 200.0
)

// Damage
const (
	// ObstacleDamage is taken per obstacle hit on a circuit
	ObstacleDamage = 0.25

	// HitSpeedFactor scales speed after an obstacle hit on a circuit
	HitSpeedFactor = 0.2

	// BumpDamage is taken by both cars in a rival bump
	BumpDamage = 0.02

	// BumpArc is the arc distance at which cars bump
	BumpArc = 0.7

	// BumpPush is how far a bump knocks the player back along the track
	BumpPush = 0.05

	// RespawnDamage is the damage carried after a wreck respawn
	RespawnDamage = 0.2

	// RivalLaneHoldMin and RivalLaneHoldJitter give seconds between rival lane changes
	RivalLaneHoldMin    = 2.0
	RivalLaneHoldJitter = 3.0
)
