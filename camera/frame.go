package camera

import (
	"github.com/lixenwraith/neon-rails/track"
	"github.com/lixenwraith/neon-rails/vmath"
)

// Frame is a Frenet-like local basis at one curve sample
// T, N, B are orthonormal and right-handed except where T is parallel to world up
type Frame struct {
	P vmath.Vec3F // point on curve
	T vmath.Vec3F // tangent
	N vmath.Vec3F // normal, lateral
	B vmath.Vec3F // binormal, vertical
}

// ComputeFrame derives the frame at arc position s by forward finite difference
//
//	T = normalize(World(s+eps) - World(s))
//	B = normalize(T × up)
//	N = normalize(B × T)
//
// When T is parallel to up the cross product is zero and is returned as is.
func ComputeFrame(c track.Curve, s, eps float64) Frame {
	p := c.World(s)
	q := c.World(s + eps)

	t := vmath.V3FNormalize(vmath.V3FSub(q, p))
	b := vmath.V3FNormalize(vmath.V3FCross(t, vmath.WorldUp))
	n := vmath.V3FNormalize(vmath.V3FCross(b, t))

	return Frame{P: p, T: t, N: n, B: b}
}

// Offset returns P displaced along the frame axes
func (f Frame) Offset(alongN, alongB, alongT float64) vmath.Vec3F {
	v := vmath.V3FAddScaled(f.P, f.N, alongN)
	v = vmath.V3FAddScaled(v, f.B, alongB)
	return vmath.V3FAddScaled(v, f.T, alongT)
}

// Camera is a chase pose slaved to the curve frame
type Camera struct {
	Pos   vmath.Vec3F
	Right vmath.Vec3F
	Up    vmath.Vec3F
	Fwd   vmath.Vec3F
}

// BuildCamera places the camera at a fixed local offset (X along N, Y along B, Z along T)
// and reuses the frame basis (N, B, T) as (Right, Up, Fwd)
func BuildCamera(f Frame, offset vmath.Vec3F) Camera {
	return Camera{
		Pos:   f.Offset(offset.X, offset.Y, offset.Z),
		Right: f.N,
		Up:    f.B,
		Fwd:   f.T,
	}
}
