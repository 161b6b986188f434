package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector, passed and copied by value
type Vec3F struct {
	X, Y, Z float64
}

// WorldUp is the fixed reference used to build curve frames
var WorldUp = Vec3F{0, 1, 0}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// V3FCross returns a × b (right-handed)
func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns v scaled to unit length
// A zero-length vector is treated as already unit and returned unchanged, no division occurs
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return v
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FAddScaled returns a + v*s, used for basis offsets
func V3FAddScaled(a, v Vec3F, s float64) Vec3F {
	return Vec3F{a.X + v.X*s, a.Y + v.Y*s, a.Z + v.Z*s}
}

// V3FLerp interpolates between a and b, t unclamped
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FDistSq returns the squared distance between a and b
func V3FDistSq(a, b Vec3F) float64 {
	return V3FMagSq(V3FSub(a, b))
}
