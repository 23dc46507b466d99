package voronoi

import "github.com/pkg/errors"

// Builder assembles a Diagram element by element. The intended producer is a
// segment Voronoi constructor; the test suite and the rectangle reference
// constructor use it directly.
//
// Usage: add vertices and cells in any order, then add edge pairs, then chain
// the half-edges of each cell with SetNext, then Finish. Finish derives the
// prev links and the incident edges, and validates the wiring.
type Builder struct {
	d Diagram
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddVertex appends a Voronoi vertex and returns its ordinal.
func (b *Builder) AddVertex(x, y float64) int {
	b.d.vertices = append(b.d.vertices, vertexRecord{x: x, y: y, incidentEdge: -1})
	return len(b.d.vertices) - 1
}

// AddSegmentCell appends a cell owned by the whole segment lines[source].
func (b *Builder) AddSegmentCell(source int) int {
	b.d.cells = append(b.d.cells, cellRecord{
		sourceIndex:  int32(source),
		category:     SourceSegment,
		incidentEdge: -1,
	})
	return len(b.d.cells) - 1
}

// AddPointCell appends a cell owned by an endpoint of lines[source]; category
// selects which endpoint.
func (b *Builder) AddPointCell(source int, category SourceCategory) int {
	b.d.cells = append(b.d.cells, cellRecord{
		sourceIndex:  int32(source),
		category:     category,
		incidentEdge: -1,
	})
	return len(b.d.cells) - 1
}

// AddEdgePair appends the two half-edges of one bisector and returns their
// ordinals. The first runs v0→v1 with cellA on its left, the twin runs v1→v0
// with cellB on its left. Pass -1 for an endpoint at infinity.
func (b *Builder) AddEdgePair(cellA, cellB, v0, v1 int, secondary, linear bool) (int, int) {
	b.d.edges = append(b.d.edges,
		edgeRecord{vertex0: int32(v0), next: -1, prev: -1, cell: int32(cellA), secondary: secondary, linear: linear},
		edgeRecord{vertex0: int32(v1), next: -1, prev: -1, cell: int32(cellB), secondary: secondary, linear: linear},
	)
	return len(b.d.edges) - 2, len(b.d.edges) - 1
}

// SetNext chains edge→next counterclockwise around their common cell.
func (b *Builder) SetNext(edge, next int) {
	b.d.edges[edge].next = int32(next)
}

// Finish validates the wiring and returns the completed diagram. The builder
// must not be reused afterwards.
func (b *Builder) Finish() (*Diagram, error) {
	d := &b.d
	for i := range d.vertices {
		if !validCoordinate(d.vertices[i].x) || !validCoordinate(d.vertices[i].y) {
			return nil, errors.Errorf("vertex %d has non-finite coordinates", i)
		}
	}
	if len(d.edges)%2 != 0 {
		return nil, errors.Errorf("odd number of half-edges: %d", len(d.edges))
	}
	for i := range d.edges {
		e := &d.edges[i]
		if e.next < 0 || int(e.next) >= len(d.edges) {
			return nil, errors.Errorf("half-edge %d has no next link", i)
		}
		next := &d.edges[e.next]
		if next.cell != e.cell {
			return nil, errors.Errorf("half-edge %d chains to %d in a different cell", i, e.next)
		}
		if next.prev >= 0 {
			return nil, errors.Errorf("half-edge %d is the next of both %d and %d", e.next, next.prev, i)
		}
		next.prev = int32(i)
		// The destination of an edge is its twin's origin; the next edge must
		// start there. Two -1s match on the wrap through infinity.
		if d.edges[i^1].vertex0 != next.vertex0 {
			return nil, errors.Errorf("half-edge %d ends at vertex %d but its next %d starts at %d",
				i, d.edges[i^1].vertex0, e.next, next.vertex0)
		}
		if e.vertex0 >= 0 && d.vertices[e.vertex0].incidentEdge < 0 {
			d.vertices[e.vertex0].incidentEdge = int32(i)
		}
		if d.cells[e.cell].incidentEdge < 0 {
			d.cells[e.cell].incidentEdge = int32(i)
		}
	}
	for i := range d.vertices {
		if d.vertices[i].incidentEdge < 0 {
			return nil, errors.Errorf("vertex %d has no incident edge", i)
		}
	}
	for i := range d.cells {
		if d.cells[i].incidentEdge < 0 {
			return nil, errors.Errorf("cell %d has no incident edge", i)
		}
	}
	out := *d
	b.d = Diagram{}
	return &out, nil
}
