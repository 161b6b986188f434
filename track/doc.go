// Package track maps an arc parameter to world points.
//
// Two interchangeable strategies implement Curve: Wave, a closed-form periodic
// function, and Polyline, a segment list with an arc-length table that also
// supports forward sampling by normalized progress and nearest-point projection.
//
// Curves are pure. All state a caller needs between frames (progress, laps)
// lives outside, see LapCounter.
package track
