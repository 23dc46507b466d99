package offset

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/voroffset/voronoi"
)

// The closed-form solutions below come from solving the two constraint
// systems symbolically (circle/circle and line/circle with equal radii) and
// hoisting the common subexpressions. Both guard against a vanishing leading
// coordinate by swapping the x and y axes, solving, and swapping back.

// intersections carries up to two solution points.
type intersections struct {
	count int
	pts   [2]r2.Point
}

// pointPointEqualDistancePoints returns the points at distance dist from both
// pt1 and pt2: the intersections of two equal-radius circles. Returns zero,
// one (tangent) or two points.
func pointPointEqualDistancePoints(pt1, pt2 voronoi.Point, dist float64) intersections {
	// Work in coordinates relative to pt2; the solutions sit symmetrically on
	// the radical line of the two circles.
	cx := float64(pt1.X - pt2.X)
	cy := float64(pt1.Y - pt2.Y)
	cl := cx*cx + cy*cy
	discr := 4*dist*dist - cl
	if discr < 0 {
		// The two points are more than 2*dist apart.
		return intersections{}
	}
	xySwapped := math.Abs(cx) < math.Abs(cy)
	if xySwapped {
		cx, cy = cy, cx
	}
	var u float64
	count := 1
	if discr > 0 {
		count = 2
		u = 0.5 * cx * math.Sqrt(cl*discr) / cl
	}
	v := 0.5*cy - u
	w := 2 * cy
	e := 0.5 / cx
	f := 0.5*cy + u
	out := intersections{count, [2]r2.Point{
		{X: -e * (v*w - cl), Y: v},
		{X: -e * (w*f - cl), Y: f},
	}}
	if xySwapped {
		out.pts[0].X, out.pts[0].Y = out.pts[0].Y, out.pts[0].X
		out.pts[1].X, out.pts[1].Y = out.pts[1].Y, out.pts[1].X
	}
	base := pt2.Vec()
	out.pts[0] = out.pts[0].Add(base)
	out.pts[1] = out.pts[1].Add(base)
	return out
}

// linePointEqualDistancePoints returns the points at distance dist from both
// the infinite line through line and the point ipt, restricted to the side of
// the line that contains ipt. Returns zero, one (the point is exactly 2*dist
// from the line) or two points.
func linePointEqualDistancePoints(line voronoi.Line, ipt voronoi.Point, dist float64) intersections {
	pt := ipt.Vec()
	lv := line.Vector()
	l2 := norm2(lv)
	lpv := line.A.Vec().Sub(pt)
	c := lpv.Cross(lv)
	if c < 0 {
		// Orient the line so its normal (a, b) below points towards ipt.
		lv = lv.Mul(-1)
		c = -c
	}

	// Line equation a*x + b*y + c - dist*sqrt(l2) == 0 in coordinates
	// relative to ipt, with (a, b) the unnormalized left normal of lv.
	a := -lv.Y
	b := lv.X

	dscaled := dist * math.Sqrt(l2)
	s := c * (2*dscaled - c)
	if s < 0 {
		// The point is more than 2*dist away from the line.
		return intersections{}
	}
	xySwapped := math.Abs(a) < math.Abs(b)
	if xySwapped {
		a, b = b, a
	}
	var u float64
	count := 1
	if s > 0 {
		count = 2
		u = a * math.Sqrt(s) / l2
	}
	e := dscaled - c
	f := b * e / l2
	g := f - u
	h := f + u
	out := intersections{count, [2]r2.Point{
		{X: (-b*g + e) / a, Y: g},
		{X: (-b*h + e) / a, Y: h},
	}}
	if xySwapped {
		out.pts[0].X, out.pts[0].Y = out.pts[0].Y, out.pts[0].X
		out.pts[1].X, out.pts[1].Y = out.pts[1].Y, out.pts[1].X
	}
	out.pts[0] = out.pts[0].Add(pt)
	out.pts[1] = out.pts[1].Add(pt)
	return out
}

// firstCircleSegmentIntersectionParameter returns the smallest t in [0, 1]
// for which pt + t*v lies on the circle around center with radius r. The
// caller guarantees an intersection exists in that range up to rounding; a
// non-positive discriminant degenerates to the closest-approach parameter.
func firstCircleSegmentIntersectionParameter(center r2.Point, r float64, pt, v r2.Point) float64 {
	d := pt.Sub(center)
	a := norm2(v)
	b := 2 * d.Dot(v)
	c := norm2(d) - r*r
	u := b*b - 4*a*c
	if u <= 0 {
		return clamp(0, 1, -b/(2*a))
	}
	u = math.Sqrt(u)
	t0 := (-b - u) / (2 * a)
	t1 := (-b + u) / (2 * a)
	if t1 < 0 {
		return 0
	}
	if t0 > 1 {
		return 1
	}
	if t0 > 0 {
		return t0
	}
	return t1
}
