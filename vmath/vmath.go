// Package vmath holds the float vector and scalar helpers shared by the curve,
// camera and game packages.
package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b, t unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Wrap01 maps any u onto [0,1), negative values included
func Wrap01(u float64) float64 {
	w := math.Mod(u, 1)
	if w < 0 {
		w += 1
	}
	// -tiny + 1 rounds to 1.0 in float64
	if w >= 1 {
		w = 0
	}
	return w
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
