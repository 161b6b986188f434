package parameter

// Projection & Chase Camera
const (
	// NearPlane is the minimum forward distance for projection
	// Points at or behind it are reported not visible, no division performed
	NearPlane = 0.05

	// FrameEpsilon is the finite-difference step used to derive the curve tangent
	FrameEpsilon = 1e-3

	// FieldOfView is the vertical field of view in degrees
	FieldOfView = 70.0

	// ChaseOffsetNormal is the camera offset along the frame normal N (world up on a level track)
	ChaseOffsetNormal = 0.0

	// ChaseOffsetBinormal is the camera offset along the binormal B (horizontal, across the track)
	ChaseOffsetBinormal = 1.2

	// ChaseOffsetTangent is the camera offset along the tangent (negative trails the player)
	ChaseOffsetTangent = -3.5

	// ViewDistance is how far ahead of the player rails are sampled (arc units)
	ViewDistance = 60.0

	// RailSampleStep is the arc spacing between rail dots
	RailSampleStep = 0.5
)
