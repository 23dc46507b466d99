package offset

import (
	"math"

	"github.com/golang/geo/r2"
)

// To compensate for imprecision in floats, equality of computed points is
// tolerance based. The offset engine works at the scale of the input
// coordinates, so an absolute tolerance is appropriate.
const Tolerance = 1e-6

func nearlyEqual(a, b r2.Point) bool {
	return math.Abs(a.X-b.X) < Tolerance && math.Abs(a.Y-b.Y) < Tolerance
}

// norm2 is the squared norm; r2.Point only exposes the square root.
func norm2(p r2.Point) float64 {
	return p.X*p.X + p.Y*p.Y
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b r2.Point, t float64) r2.Point {
	return a.Add(b.Sub(a).Mul(t))
}

// footPt projects p onto the infinite line through a and b.
func footPt(a, b, p r2.Point) r2.Point {
	v := b.Sub(a)
	t := p.Sub(a).Dot(v) / norm2(v)
	return a.Add(v.Mul(t))
}

// rayPointDistance is the distance from p to the line through origin with
// direction dir. The name follows the Voronoi property it is used under: the
// foot of a Voronoi vertex on its cell's segment always falls inside the
// segment, so the line distance is the segment distance.
func rayPointDistance(origin, dir, p r2.Point) float64 {
	return math.Abs(dir.Cross(p.Sub(origin))) / dir.Norm()
}
