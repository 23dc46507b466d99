// Polygon offsetting on top of a precomputed Voronoi diagram of line
// segments.
//
// Given the half-edge Voronoi diagram of a polygonal domain's boundary
// segments and a signed distance, this package produces the closed polygons
// forming the inward (negative) or outward (positive) offset of the boundary,
// with the circular arcs around convex corners discretized to a bounded chord
// error. The diagram itself comes from an external producer; see the voronoi
// package for the contract it must satisfy.
package voroffset

import (
	"github.com/osuushi/voroffset/offset"
	"github.com/osuushi/voroffset/voronoi"
)

type Point = voronoi.Point
type Line = voronoi.Line
type Diagram = voronoi.Diagram
type Polygon = offset.Polygon

// Offset runs the full pipeline: annotate the diagram against the input
// segments, build the signed vertex distance table, and trace the offset
// polygons at signed distance delta, discretizing arcs to at most
// discretizationError of chord deviation.
//
// The segments must form closed simple polygons, counterclockwise for outer
// boundaries and clockwise for holes, and the diagram must be the Voronoi
// diagram of exactly those segments. Inconsistencies between the two are
// reported as an error rather than traced into garbage.
func Offset(d *Diagram, lines []Line, delta, discretizationError float64) (result []Polygon, err error) {
	defer func() {
		recoveredErr := offset.HandleOffsetPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	ann := offset.Annotate(d, lines)
	if err := ann.Verify(d); err != nil {
		return nil, err
	}
	dists := offset.SignedVertexDistances(d, lines, ann)
	return offset.Offset(d, lines, dists, delta, discretizationError), nil
}
