package offset

import (
	"github.com/osuushi/voroffset/voronoi"
)

// SignedVertexDistances returns the signed Euclidean distance from every
// Voronoi vertex to the nearest point of the input contour: zero on the
// contour, negative inside, positive outside. The diagram must be annotated.
//
// Every Voronoi vertex is equidistant from all of its incident sites, so
// measuring to any one of them gives the distance to the nearest boundary
// feature. Point cells are preferred over segment cells because measuring to
// a concrete endpoint sidesteps sign trouble where a vertex projects onto a
// segment's end.
func SignedVertexDistances(d *voronoi.Diagram, lines []voronoi.Line, ann *Annotations) []float64 {
	out := make([]float64, d.NumVertices())
	for i := 0; i < d.NumVertices(); i++ {
		vc := ann.Vertices[i]
		if vc == VertexOnContour {
			continue
		}
		vertex := d.Vertex(i)
		first := vertex.IncidentEdge()
		edge := first
		var pointCell *voronoi.Cell
		for {
			if edge.Cell().ContainsPoint() {
				c := edge.Cell()
				pointCell = &c
				break
			}
			edge = edge.RotNext()
			if edge == first {
				break
			}
		}
		var dist float64
		if pointCell == nil {
			// All incident cells are segment cells; project onto one of the
			// segments.
			line := lines[edge.Cell().SourceIndex()]
			dist = rayPointDistance(line.A.Vec(), line.Vector(), vertex.Vec())
		} else {
			dist = pointCell.ContourPoint(lines).Vec().Sub(vertex.Vec()).Norm()
		}
		if vc == VertexInside {
			dist = -dist
		}
		out[i] = dist
	}
	return out
}
