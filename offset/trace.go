package offset

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/voroffset/voronoi"
)

// Offset traces the closed offset polygons at signed distance delta from the
// input contour. The diagram must be annotated and dists must come from
// SignedVertexDistances. Circular arcs around point sites are discretized so
// that no chord deviates from the true arc by more than discretizationError.
//
// The offset of a counterclockwise outer boundary comes out counterclockwise
// and the offset of a clockwise hole comes out clockwise. An inward offset
// larger than the largest inscribed circle legitimately returns no polygons.
func Offset(
	d *voronoi.Diagram,
	lines []voronoi.Line,
	dists []float64,
	delta float64,
	discretizationError float64,
) []Polygon {
	if delta == 0 {
		fatalf("offset distance must be nonzero")
	}
	if discretizationError <= 0 {
		fatalf("discretization error must be positive")
	}
	edgePoints := EdgeOffsetIntersections(d, lines, dists, delta)

	deltaAbs := math.Abs(delta)
	// Bounding the sagitta by the discretization error bounds the angle of
	// one chord step.
	angleStep := 2 * math.Acos(clamp(-1, 1, (deltaAbs-discretizationError)/deltaAbs))
	cosThreshold := math.Cos(angleStep)

	// The walk around a cell from an intersected edge: the next edge of the
	// same cell whose twin carries an intersection continues the curve.
	nextOffsetEdge := func(start voronoi.Edge) (voronoi.Edge, bool) {
		for edge := start.Next(); edge != start; edge = edge.Next() {
			if edgePoints[edge.Twin().Index()].HasIntersection() {
				return edge.Twin(), true
			}
		}
		return voronoi.Edge{}, false
	}

	var out []Polygon
	for seed := 0; seed < d.NumEdges(); seed++ {
		if !edgePoints[seed].HasIntersection() {
			continue
		}
		startEdge := d.Edge(seed)
		edge := startEdge
		lastPt := edgePoints[seed].Point
		var poly Polygon
		broken := false
		for {
			nextEdge, ok := nextOffsetEdge(edge)
			if !ok {
				// The intersection table promises a continuation; not finding
				// one means the producer handed us inconsistent topology.
				// Skip the loop and keep whatever else traces cleanly.
				broken = true
				break
			}
			p2 := edgePoints[nextEdge.Index()].Point
			// Consume the intersection so the loop is traced only once.
			edgePoints[nextEdge.Index()] = noHit

			if cell := edge.Cell(); cell.ContainsPoint() {
				// The curve between two crossings of a point cell is an arc
				// around the site. Voronoi cells are convex, so the arc's
				// angle is convex as well.
				center := cell.ContourPoint(lines).Vec()
				v1 := lastPt.Sub(center)
				v2 := p2.Sub(center)
				ccw := v1.Cross(v2) > 0
				cosA := v1.Dot(v2)
				norm := v1.Norm() * v2.Norm()
				if norm <= 0 {
					fatalf("offset curve touches the point site of cell %d", cell.Index())
				}
				if cosA < cosThreshold*norm {
					angle := math.Acos(clamp(-1, 1, cosA/norm))
					nSteps := int(math.Ceil(angle / angleStep))
					astep := angle / float64(nSteps)
					if !ccw {
						astep = -astep
					}
					a := astep
					for k := 1; k < nSteps; k++ {
						sin, cos := math.Sincos(a)
						poly.Points = append(poly.Points, center.Add(r2.Point{
							X: cos*v1.X - sin*v1.Y,
							Y: sin*v1.X + cos*v1.Y,
						}))
						a += astep
					}
				}
			}
			if len(poly.Points) == 0 || !nearlyEqual(poly.Points[len(poly.Points)-1], p2) {
				poly.Points = append(poly.Points, p2)
			}
			edge = nextEdge
			lastPt = p2
			if edge == startEdge {
				break
			}
		}
		if broken {
			continue
		}
		if delta < 0 {
			// The trace visits cells in their half-edge winding order, which
			// runs against the curve for inward offsets.
			poly = poly.Reverse()
		}
		out = append(out, poly)
	}
	return out
}
