package camera

import (
	"math"

	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/vmath"
)

// ScreenPoint is a real-valued pixel position; rounding is the caller's choice
type ScreenPoint struct {
	X, Y  float64
	Depth float64 // forward distance from the camera
}

// Projector maps camera-space points to a pixel grid
type Projector struct {
	Width  float64
	Height float64
	Focal  float64
}

// NewProjector computes the focal length once per canvas size
func NewProjector(pixW, pixH int, fovDeg float64) Projector {
	fov := fovDeg * math.Pi / 180
	return Projector{
		Width:  float64(pixW),
		Height: float64(pixH),
		Focal:  0.5 * float64(pixH) / math.Tan(fov/2),
	}
}

// Project returns false for points at or behind the near plane, without dividing
func (pr Projector) Project(cam Camera, p vmath.Vec3F) (ScreenPoint, bool) {
	v := vmath.V3FSub(p, cam.Pos)
	x := vmath.V3FDot(v, cam.Right)
	y := vmath.V3FDot(v, cam.Up)
	z := vmath.V3FDot(v, cam.Fwd)

	if z <= parameter.NearPlane {
		return ScreenPoint{}, false
	}

	return ScreenPoint{
		X:     (x/z)*pr.Focal + pr.Width/2,
		Y:     (-y/z)*pr.Focal + pr.Height/2,
		Depth: z,
	}, true
}
