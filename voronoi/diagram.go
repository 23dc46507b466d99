// Package voronoi holds the half-edge representation of a Voronoi diagram of
// line segments that the offset engine consumes. The diagram is stored as
// arena-allocated tables of vertices, half-edges and cells addressed by int32
// ordinals; twin half-edges sit at consecutive even/odd positions, so
// twin(e) == e^1. The tables are immutable once a Builder finalizes them.
// Any per-element state the offset engine needs (categories, distances,
// intersection points) lives in separate arrays indexed by the same ordinals.
package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Point is an input coordinate. Sites are given in integer coordinates; only
// the computed Voronoi vertices are real-valued.
type Point struct {
	X, Y int64
}

// Vec converts an input point to a float vector for geometric computation.
func (p Point) Vec() r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Line is a directed input segment. A set of lines forms one or more closed
// polygons; outer boundaries wind counterclockwise and holes clockwise.
type Line struct {
	A, B Point
}

// Vector returns B - A as a float vector.
func (l Line) Vector() r2.Point {
	return r2.Point{X: float64(l.B.X - l.A.X), Y: float64(l.B.Y - l.A.Y)}
}

// SourceCategory tells which feature of the source segment a cell belongs to.
type SourceCategory uint8

const (
	// SegmentStartPoint marks a cell owned by the start point of its segment.
	SegmentStartPoint SourceCategory = iota
	// SegmentEndPoint marks a cell owned by the end point of its segment.
	SegmentEndPoint
	// SourceSegment marks a cell owned by the whole segment.
	SourceSegment
)

func (c SourceCategory) String() string {
	switch c {
	case SegmentStartPoint:
		return "SegmentStartPoint"
	case SegmentEndPoint:
		return "SegmentEndPoint"
	case SourceSegment:
		return "SourceSegment"
	}
	return "InvalidSourceCategory"
}

type vertexRecord struct {
	x, y         float64
	incidentEdge int32
}

type edgeRecord struct {
	// vertex0 is the origin vertex, or -1 for a half-edge coming in from
	// infinity. The destination is the twin's origin.
	vertex0   int32
	next      int32
	prev      int32
	cell      int32
	secondary bool
	linear    bool
}

type cellRecord struct {
	sourceIndex  int32
	category     SourceCategory
	incidentEdge int32
}

// Diagram is the finished half-edge structure. Obtain one from a Builder.
type Diagram struct {
	vertices []vertexRecord
	edges    []edgeRecord
	cells    []cellRecord
}

func (d *Diagram) NumVertices() int { return len(d.vertices) }
func (d *Diagram) NumEdges() int    { return len(d.edges) }
func (d *Diagram) NumCells() int    { return len(d.cells) }

// Vertex returns a handle for the i'th vertex.
func (d *Diagram) Vertex(i int) Vertex { return Vertex{d, int32(i)} }

// Edge returns a handle for the i'th half-edge.
func (d *Diagram) Edge(i int) Edge { return Edge{d, int32(i)} }

// Cell returns a handle for the i'th cell.
func (d *Diagram) Cell(i int) Cell { return Cell{d, int32(i)} }

// Vertex is a handle to one Voronoi vertex. Handles are value types; two
// handles are equal iff they address the same element of the same diagram.
type Vertex struct {
	d *Diagram
	i int32
}

func (v Vertex) Index() int { return int(v.i) }
func (v Vertex) X() float64 { return v.d.vertices[v.i].x }
func (v Vertex) Y() float64 { return v.d.vertices[v.i].y }

// Vec returns the vertex position as a float vector.
func (v Vertex) Vec() r2.Point { return r2.Point{X: v.X(), Y: v.Y()} }

// IncidentEdge returns one of the half-edges originating at this vertex. The
// full pencil of edges around the vertex is reachable through RotNext.
func (v Vertex) IncidentEdge() Edge {
	return Edge{v.d, v.d.vertices[v.i].incidentEdge}
}

// Edge is a handle to one half-edge.
type Edge struct {
	d *Diagram
	i int32
}

func (e Edge) Index() int { return int(e.i) }

// Vertex0 returns the origin vertex, or nil if the half-edge comes in from
// infinity.
func (e Edge) Vertex0() *Vertex {
	vi := e.d.edges[e.i].vertex0
	if vi < 0 {
		return nil
	}
	return &Vertex{e.d, vi}
}

// Vertex1 returns the destination vertex, or nil if the half-edge goes out to
// infinity.
func (e Edge) Vertex1() *Vertex {
	return e.Twin().Vertex0()
}

// Twin returns the oppositely directed half-edge of the same bisector. Twins
// are stored pairwise, so this is just an index flip.
func (e Edge) Twin() Edge { return Edge{e.d, e.i ^ 1} }

// Next returns the next half-edge counterclockwise around this edge's cell.
func (e Edge) Next() Edge { return Edge{e.d, e.d.edges[e.i].next} }

// Prev returns the previous half-edge around this edge's cell.
func (e Edge) Prev() Edge { return Edge{e.d, e.d.edges[e.i].prev} }

// RotNext rotates to the next half-edge sharing this edge's origin vertex.
func (e Edge) RotNext() Edge { return e.Twin().Next() }

// RotPrev rotates the opposite way around the origin vertex.
func (e Edge) RotPrev() Edge { return e.Prev().Twin() }

// Cell returns the cell this half-edge bounds; the cell lies to the left of
// the directed edge.
func (e Edge) Cell() Cell { return Cell{e.d, e.d.edges[e.i].cell} }

// IsSecondary reports whether the edge separates a point cell from the
// segment cell whose segment ends at that point. Secondary edges begin
// exactly on the input contour.
func (e Edge) IsSecondary() bool { return e.d.edges[e.i].secondary }

// IsLinear reports whether the bisector is a straight line (as opposed to the
// parabolic arc of a point-segment bisector).
func (e Edge) IsLinear() bool { return e.d.edges[e.i].linear }

// IsFinite reports whether both endpoints exist.
func (e Edge) IsFinite() bool {
	return e.d.edges[e.i].vertex0 >= 0 && e.d.edges[e.i^1].vertex0 >= 0
}

func (e Edge) IsInfinite() bool { return !e.IsFinite() }

// Cell is a handle to one Voronoi cell.
type Cell struct {
	d *Diagram
	i int32
}

func (c Cell) Index() int { return int(c.i) }

// SourceIndex returns the index of the owning site's segment in the input
// segment list.
func (c Cell) SourceIndex() int { return int(c.d.cells[c.i].sourceIndex) }

// SourceCategory tells whether the cell is owned by the segment itself or by
// one of its endpoints.
func (c Cell) SourceCategory() SourceCategory { return c.d.cells[c.i].category }

// ContainsPoint reports whether the owning site is a segment endpoint.
func (c Cell) ContainsPoint() bool { return c.d.cells[c.i].category != SourceSegment }

// ContainsSegment reports whether the owning site is a whole segment.
func (c Cell) ContainsSegment() bool { return c.d.cells[c.i].category == SourceSegment }

// IncidentEdge returns one of the half-edges bounding this cell; the others
// follow via Next.
func (c Cell) IncidentEdge() Edge {
	return Edge{c.d, c.d.cells[c.i].incidentEdge}
}

// ContourPoint returns the site point of a point cell. It must not be called
// on a segment cell.
func (c Cell) ContourPoint(lines []Line) Point {
	line := lines[c.SourceIndex()]
	if c.SourceCategory() == SegmentStartPoint {
		return line.A
	}
	return line.B
}

// CheckPairing validates the structural properties the offset engine assumes:
// twins at consecutive even/odd indices agreeing on the secondary flag, and
// every secondary edge separating a point cell from a segment cell whose
// segment carries that point as an endpoint.
func (d *Diagram) CheckPairing(lines []Line) error {
	if len(d.edges)%2 != 0 {
		return errors.Errorf("diagram has odd half-edge count %d", len(d.edges))
	}
	for i := 0; i < len(d.edges); i += 2 {
		e := d.Edge(i)
		e2 := d.Edge(i + 1)
		if e.IsSecondary() != e2.IsSecondary() {
			return errors.Errorf("half-edge pair %d/%d disagrees on the secondary flag", i, i+1)
		}
		if !e.IsSecondary() {
			continue
		}
		if e.Cell().ContainsPoint() == e2.Cell().ContainsPoint() {
			return errors.Errorf("secondary pair %d/%d does not separate a point cell from a segment cell", i, i+1)
		}
		ex := e
		if !ex.Cell().ContainsPoint() {
			ex = e2
		}
		pt := ex.Cell().ContourPoint(lines)
		line := lines[ex.Twin().Cell().SourceIndex()]
		if pt != line.A && pt != line.B {
			return errors.Errorf("secondary pair %d/%d: point site %v is not an endpoint of segment %v", i, i+1, pt, line)
		}
	}
	return nil
}

// Vertex coordinates must be finite.
func validCoordinate(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
