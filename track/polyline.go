package track

import (
	"errors"
	"math"

	"github.com/lixenwraith/neon-rails/vmath"
)

// ErrDegeneratePolyline is returned for fewer than two points or zero total length
var ErrDegeneratePolyline = errors.New("polyline needs two or more points and non-zero length")

// Sample is a point on a polyline with its ground-plane heading
// Heading 0 faces -Z, increasing clockwise seen from above
type Sample struct {
	Point   vmath.Vec3F
	Heading float64
}

type segment struct {
	start, end vmath.Vec3F
	length     float64
	cumulative float64
}

// Polyline is a piecewise-linear curve with a precomputed arc-length table
// A closed loop repeats its first point at the end
type Polyline struct {
	segments []segment
	total    float64
}

// NewPolyline builds the segment table
func NewPolyline(points []vmath.Vec3F) (*Polyline, error) {
	if len(points) < 2 {
		return nil, ErrDegeneratePolyline
	}

	p := &Polyline{segments: make([]segment, 0, len(points)-1)}
	for i := 0; i < len(points)-1; i++ {
		l := vmath.V3FMag(vmath.V3FSub(points[i+1], points[i]))
		p.segments = append(p.segments, segment{
			start:      points[i],
			end:        points[i+1],
			length:     l,
			cumulative: p.total,
		})
		p.total += l
	}

	if p.total == 0 {
		return nil, ErrDegeneratePolyline
	}
	return p, nil
}

// Length returns the total arc length
func (p *Polyline) Length() float64 {
	return p.total
}

// Sample returns the point at normalized progress u, wrapped into [0,1)
func (p *Polyline) Sample(u float64) Sample {
	distance := vmath.Wrap01(u) * p.total

	for _, seg := range p.segments {
		if distance <= seg.length {
			t := 0.0
			if seg.length != 0 {
				t = distance / seg.length
			}
			return Sample{
				Point:   vmath.V3FLerp(seg.start, seg.end, t),
				Heading: seg.heading(),
			}
		}
		distance -= seg.length
	}

	// Float drift past the final segment
	last := p.segments[len(p.segments)-1]
	return Sample{Point: last.end, Heading: last.heading()}
}

// World makes a polyline a Curve parameterized by arc length, looping every Length units
func (p *Polyline) World(s float64) vmath.Vec3F {
	return p.Sample(s / p.total).Point
}

// Project returns the normalized progress of the nearest point on the polyline to q
func (p *Polyline) Project(q vmath.Vec3F) float64 {
	bestDist := math.Inf(1)
	best := 0.0

	for _, seg := range p.segments {
		ab := vmath.V3FSub(seg.end, seg.start)
		ap := vmath.V3FSub(q, seg.start)
		abLen2 := vmath.V3FMagSq(ab)

		t := 0.0
		if abLen2 != 0 {
			t = vmath.Clamp(vmath.V3FDot(ap, ab)/abLen2, 0, 1)
		}

		d := vmath.V3FDistSq(q, vmath.V3FAddScaled(seg.start, ab, t))
		if d < bestDist {
			bestDist = d
			best = (seg.cumulative + seg.length*t) / p.total
		}
	}
	return best
}

func (s segment) heading() float64 {
	return math.Atan2(s.end.X-s.start.X, s.start.Z-s.end.Z)
}

// CircuitLayout is the stock closed circuit in layout units (X right, Z down the map)
var CircuitLayout = [][2]float64{
	{1.5, 1.5},
	{6.5, 1.2},
	{9.5, 1.3},
	{9.8, 7.3},
	{12.2, 8.6},
	{12.2, 10.5},
	{6.4, 10.8},
	{1.4, 10.3},
	{1.3, 4.8},
	{1.5, 1.5},
}

// NewCircuit builds a ground-plane polyline from layout points scaled to world units
func NewCircuit(layout [][2]float64, scale float64) (*Polyline, error) {
	pts := make([]vmath.Vec3F, len(layout))
	for i, xy := range layout {
		pts[i] = vmath.Vec3F{X: xy[0] * scale, Z: xy[1] * scale}
	}
	return NewPolyline(pts)
}
