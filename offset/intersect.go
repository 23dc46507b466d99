package offset

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/voroffset/voronoi"
)

// EdgePointState says what is known about one half-edge's intersection with
// the offset circle of its cell's site.
type EdgePointState uint8

const (
	// EdgePointUnvisited means the edge has not been looked at yet.
	EdgePointUnvisited EdgePointState = iota
	// EdgePointNoHit means the edge was visited and definitely carries no
	// intersection, so the sibling half-edge need not reconsider it.
	EdgePointNoHit
	// EdgePointHit means Point is a genuine intersection with the offset
	// circle, placed on this half-edge by the convention that an edge's
	// intersection is the crossing nearer its destination.
	EdgePointHit
)

// EdgePoint is one entry of the intersection table.
type EdgePoint struct {
	State EdgePointState
	Point r2.Point
}

func (p EdgePoint) HasIntersection() bool {
	return p.State == EdgePointHit
}

func hit(pt r2.Point) EdgePoint {
	return EdgePoint{State: EdgePointHit, Point: pt}
}

var noHit = EdgePoint{State: EdgePointNoHit}

// EdgeOffsetIntersections computes, for every half-edge, at most one
// intersection with the circle of radius |delta| around the defining site of
// the edge's cell. dists must come from SignedVertexDistances on the same
// diagram. The sign of delta selects the outward (positive) or inward
// (negative) offset.
//
// Each bisector is intersected at most twice by an offset circle; the
// crossing nearer a half-edge's destination goes onto that half-edge, and an
// edge is never intersected at its higher-distance end. Intersecting there
// would produce zero-length output edges and can trace the same curve from
// both sides of a Voronoi vertex.
func EdgeOffsetIntersections(
	d *voronoi.Diagram,
	lines []voronoi.Line,
	dists []float64,
	delta float64,
) []EdgePoint {
	outside := delta > 0
	deltaAbs := math.Abs(delta)
	delta2 := deltaAbs * deltaAbs

	out := make([]EdgePoint, d.NumEdges())
	for i := 0; i < d.NumEdges(); i++ {
		if out[i].State != EdgePointUnvisited {
			continue
		}
		edge := d.Edge(i)
		v0 := edge.Vertex0()
		v1 := edge.Vertex1()
		if v0 == nil {
			// Half-edge coming in from infinity; its outgoing twin computes
			// the intersection and marks this slot.
			continue
		}
		d0 := dists[v0.Index()]
		d1 := math.MaxFloat64
		if v1 != nil {
			d1 = dists[v1.Index()]
		}
		if d0 == d1 {
			// No sign change possible along the linear interpolation.
			continue
		}
		if !outside {
			d0, d1 = -d0, -d1
		}
		dmin, dmax := d0, d1
		if dmin > dmax {
			dmin, dmax = dmax, dmin
		}
		// The offset distance may be lower than dmin, but an edge is never
		// intersected at or above dmax (see above).
		if deltaAbs >= dmax {
			continue
		}

		cell := edge.Cell()
		cell2 := edge.Twin().Cell()
		line0 := lines[cell.SourceIndex()]
		line1 := lines[cell2.SourceIndex()]
		twinIdx := edge.Twin().Index()

		if v1 == nil {
			// Unbounded edge; the distance along it is monotone, so the
			// circle crosses iff it reaches past the finite end.
			if deltaAbs >= dmin {
				if cell.ContainsPoint() && cell2.ContainsPoint() {
					// The ray is perpendicular to the join of the two point
					// sites.
					pt0 := cell.ContourPoint(lines).Vec()
					pt1 := cell2.ContourPoint(lines).Vec()
					dir := r2.Point{X: pt0.Y - pt1.Y, Y: pt1.X - pt0.X}
					pt := v0.Vec()
					t := firstCircleSegmentIntersectionParameter(pt0, deltaAbs, pt, dir)
					out[i] = hit(pt.Add(dir.Mul(t)))
				} else {
					// Secondary ray leaving a contour endpoint perpendicular
					// to its segment; the crossing is one radius out along
					// the segment's normal.
					var ipt voronoi.Point
					var line voronoi.Line
					if cell.ContainsSegment() {
						ipt = cell2.ContourPoint(lines)
						line = line0
					} else {
						ipt = cell.ContourPoint(lines)
						line = line1
					}
					n := r2.Point{
						X: float64(line.B.Y - line.A.Y),
						Y: float64(line.A.X - line.B.X),
					}.Normalize()
					out[i] = hit(ipt.Vec().Add(n.Mul(deltaAbs)))
				}
			}
			// The incoming twin of an unbounded edge is never intersected.
			out[twinIdx] = noHit
			continue
		}

		done := false
		bisector := cell.ContainsSegment() && cell2.ContainsSegment()
		if bisector || edge.IsSecondary() {
			// Segment-segment bisector, or a secondary edge starting on the
			// contour: the distance varies linearly along the edge.
			if !bisector || (dmin != dmax && deltaAbs >= dmin) {
				t := clamp(0, 1, (deltaAbs-dmin)/(dmax-dmin))
				if d1 < d0 {
					out[twinIdx] = hit(lerp(v1.Vec(), v0.Vec(), t))
					out[i] = noHit
				} else {
					out[i] = hit(lerp(v0.Vec(), v1.Vec(), t))
					out[twinIdx] = noHit
				}
				done = true
			}
		} else {
			// A point site on at least one side: the distance along the edge
			// has a unique interior minimum, so the circle can cross twice.
			pointVsSegment := cell.ContainsPoint() != cell2.ContainsPoint()
			ptCell := cell
			if !ptCell.ContainsPoint() {
				ptCell = cell2
			}
			pt0 := ptCell.ContourPoint(lines)
			p0 := v0.Vec()
			p1 := v1.Vec()
			px := pt0.Vec()

			dmin2 := dmin * dmin
			hasIntersection := false
			possiblyTwoPoints := false
			if delta2 >= dmin2 {
				hasIntersection = true
			} else {
				// The endpoint distances don't reach the circle; check the
				// true minimum at the foot of the point site on the edge.
				dminNew2 := dmin2
				if pointVsSegment {
					// For the parabolic arc the minimum is halfway between
					// the point site and its projection onto the segment,
					// when that projection falls between the edge ends.
					line := line0
					if !cell.ContainsSegment() {
						line = line1
					}
					ptLine := line.A.Vec()
					vLine := line.Vector()
					t0 := p0.Sub(ptLine).Dot(vLine)
					t1 := p1.Sub(ptLine).Dot(vLine)
					tx := px.Sub(ptLine).Dot(vLine)
					if (tx >= t0 && tx <= t1) || (tx >= t1 && tx <= t0) {
						ft := footPt(ptLine, ptLine.Add(vLine), px)
						dminNew2 = norm2(ft.Sub(px)) * 0.25
					}
				} else {
					// Point-point sites: project the site onto the edge.
					v := p1.Sub(p0)
					l2 := norm2(v)
					t := v.Dot(px.Sub(p0))
					if t >= 0 && t <= l2 {
						ft := p0.Add(v.Mul(t / l2))
						dminNew2 = norm2(ft.Sub(px))
					}
				}
				if dminNew2 < dmin2 {
					dmin2 = dminNew2
					hasIntersection = delta2 >= dmin2
					possiblyTwoPoints = hasIntersection
				}
			}
			if hasIntersection {
				var its intersections
				if pointVsSegment {
					line := line0
					if !cell.ContainsSegment() {
						line = line1
					}
					its = linePointEqualDistancePoints(line, pt0, deltaAbs)
				} else {
					its = pointPointEqualDistancePoints(pt0, cell2.ContourPoint(lines), deltaAbs)
				}
				// Tangential contacts are ignored; only a genuine pair of
				// candidates can put a crossing on this edge.
				if its.count == 2 {
					if possiblyTwoPoints {
						// Both candidates may fall on this edge. Keep those
						// whose projection onto the chord lies between the
						// ends; the one nearer v0 goes onto the twin.
						v := p1.Sub(p0)
						l2 := norm2(v)
						t0 := v.Dot(its.pts[0].Sub(p0))
						t1 := v.Dot(its.pts[1].Sub(p0))
						if t0 > t1 {
							t0, t1 = t1, t0
							its.pts[0], its.pts[1] = its.pts[1], its.pts[0]
						}
						if t0 < 0 || t0 > l2 {
							if t1 < 0 || t1 > l2 {
								its.count = 0
							} else {
								its.count--
								its.pts[0] = its.pts[1]
							}
						} else if t1 < 0 || t1 > l2 {
							its.count--
						}
					} else {
						// Only one crossing lies on the edge: the candidate
						// between the edge ends, which is the one whose
						// farther endpoint is nearer.
						e0 := math.Max(norm2(its.pts[0].Sub(p0)), norm2(its.pts[0].Sub(p1)))
						e1 := math.Max(norm2(its.pts[1].Sub(p0)), norm2(its.pts[1].Sub(p1)))
						if e0 > e1 {
							its.pts[0] = its.pts[1]
						}
						its.count--
					}
					if its.count == 2 {
						out[i] = hit(its.pts[1])
						out[twinIdx] = hit(its.pts[0])
						done = true
					} else if its.count == 1 {
						target, other := i, twinIdx
						if d1 < d0 {
							target, other = twinIdx, i
						}
						out[target] = hit(its.pts[0])
						out[other] = noHit
						done = true
					}
				}
			}
		}
		if !done {
			out[i] = noHit
			out[twinIdx] = noHit
		}
	}
	return out
}
