// Package camera builds the chase camera from a track curve and projects world
// points onto the dot canvas pixel grid.
//
// Orientation is rigidly slaved to the curve: the camera has no yaw or pitch
// of its own, it rides the frame (N, B, T) as (Right, Up, Fwd).
package camera
