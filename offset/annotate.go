package offset

import (
	"math"

	"github.com/osuushi/voroffset/voronoi"
	"github.com/pkg/errors"
)

// Annotate classifies every vertex, half-edge and cell of the diagram as
// inside, outside or on the contour of the polygons described by lines, using
// only local incidence information. The classification runs in three passes:
//
//  1. Local seeding: every unbounded edge is outside, and every finite edge
//     with a segment cell on at least one side can be classified against that
//     segment's line.
//  2. One round of expansion across the remaining edges, which necessarily
//     separate two point cells, from any endpoint pass 1 already labeled.
//  3. A seed fill over cells that floods whole regions of point cells.
//
// The diagram is left untouched; all state goes into the returned
// Annotations. Calling Annotate again on the same input yields identical
// results.
func Annotate(d *voronoi.Diagram, lines []voronoi.Line) *Annotations {
	a := &Annotations{
		Vertices: make([]VertexCategory, d.NumVertices()),
		Edges:    make([]EdgeCategory, d.NumEdges()),
		Cells:    make([]CellCategory, d.NumCells()),
	}
	a.seedLocal(d, lines)
	queue := a.expandPointEdges(d)
	a.seedFill(d, queue)
	return a
}

func (a *Annotations) setVertex(v *voronoi.Vertex, c VertexCategory) {
	cur := a.Vertices[v.Index()]
	if cur != VertexUnknown && cur != c {
		fatalf("vertex %d reclassified from %s to %s", v.Index(), cur, c)
	}
	a.Vertices[v.Index()] = c
}

func (a *Annotations) setEdge(e voronoi.Edge, c EdgeCategory) {
	cur := a.Edges[e.Index()]
	if cur != EdgeUnknown && cur != c {
		fatalf("half-edge %d reclassified from %s to %s", e.Index(), cur, c)
	}
	a.Edges[e.Index()] = c
}

// setCell writes a cell category, promoting to Boundary when a cell is seen
// from both sides of the contour. Boundary is absorbing, which makes the
// write order irrelevant. Reports whether the stored category changed.
func (a *Annotations) setCell(c voronoi.Cell, cc CellCategory) bool {
	cur := a.Cells[c.Index()]
	switch cur {
	case CellUnknown:
	case CellOutside:
		if cc == CellInside {
			cc = CellBoundary
		}
	case CellInside:
		if cc == CellOutside {
			cc = CellBoundary
		}
	case CellBoundary:
		return false
	}
	if cur != cc {
		a.Cells[c.Index()] = cc
		return true
	}
	return false
}

func roundCoord(x float64) int64 {
	return int64(math.Round(x))
}

func onPoint(v *voronoi.Vertex, pt voronoi.Point) bool {
	return roundCoord(v.X()) == pt.X && roundCoord(v.Y()) == pt.Y
}

// seedLocal is pass 1: classify everything that can be decided from one edge
// and the segment sites next to it.
func (a *Annotations) seedLocal(d *voronoi.Diagram, lines []voronoi.Line) {
	for i := 0; i < d.NumEdges(); i++ {
		edge := d.Edge(i)
		v1 := edge.Vertex1()
		if v1 == nil {
			// Unbounded edge separating two point sites or a point site and a
			// segment site. The missing end is implicitly outside, and the
			// finite end sits where the bisector leaves the sites' hull,
			// which is on the contour.
			v0 := edge.Vertex0()
			if v0 == nil {
				fatalf("half-edge %d is unbounded at both ends; the input is degenerate", i)
			}
			a.setEdge(edge, EdgePointsOutside)
			a.setEdge(edge.Twin(), EdgePointsToContour)
			a.setVertex(v0, VertexOnContour)
			if edge.IsSecondary() {
				cell := edge.Cell()
				cell2 := edge.Twin().Cell()
				if cell.ContainsSegment() {
					cell, cell2 = cell2, cell
				}
				// A cell owning a contour point with an unbounded secondary
				// edge is outside; the segment cell straddles the contour.
				a.setCell(cell, CellOutside)
				a.setCell(cell2, CellBoundary)
			}
			continue
		}
		v0 := edge.Vertex0()
		if v0 == nil {
			// Incoming unbounded half-edge; its twin was or will be handled
			// above.
			continue
		}

		// Finite edge. Classification needs a segment site on one side; edges
		// between two point cells are left to the expansion passes.
		cell := edge.Cell()
		if !cell.ContainsSegment() {
			cell = edge.Twin().Cell()
			if !cell.ContainsSegment() {
				continue
			}
		}
		line := lines[cell.SourceIndex()]
		var cell2 voronoi.Cell
		if cell == edge.Cell() {
			cell2 = edge.Twin().Cell()
		} else {
			cell2 = edge.Cell()
		}

		// Detect whether one end of this edge coincides with a polygon
		// vertex.
		var ptOnContour *voronoi.Point
		if cell == edge.Cell() && edge.Twin().Cell().ContainsSegment() {
			// Bisector of two segments. If they are consecutive on the
			// contour, one end of the bisector is their shared vertex; a
			// bisector of two non-adjacent segments touches no contour point.
			line2 := lines[cell2.SourceIndex()]
			if line.A == line2.B {
				pt := line.A
				ptOnContour = &pt
			} else if line.B == line2.A {
				pt := line.B
				ptOnContour = &pt
			}
		} else if edge.IsSecondary() {
			// A secondary edge starts at the point site's position.
			pt := cell2.ContourPoint(lines)
			ptOnContour = &pt
		}

		if ptOnContour != nil {
			// Find out which end it is. Voronoi vertices are real-valued, so
			// coincidence is tested by rounding back to the integer grid.
			v1OnContour := false
			if onPoint(v0, *ptOnContour) {
				if onPoint(v1, *ptOnContour) {
					// Both ends round to the same contour point. This is a
					// really degenerate input; play safe and keep the nearer
					// end on the contour.
					pv := ptOnContour.Vec()
					if norm2(v0.Vec().Sub(pv)) > norm2(v1.Vec().Sub(pv)) {
						v1OnContour = true
					}
				}
			} else {
				v1OnContour = true
			}
			if v1OnContour {
				a.setEdge(edge, EdgePointsToContour)
				a.setVertex(v1, VertexOnContour)
				continue
			}
		}

		// v0 is on the contour or undecided; v1 is strictly off the contour.
		// Classify v1 by its side of the segment's directed line. For
		// counterclockwise contours the interior is the left side.
		side := v1.Vec().Sub(line.A.Vec()).Cross(line.Vector())
		if side == 0 {
			fatalf("voronoi vertex %d lies exactly on input segment %d", v1.Index(), cell.SourceIndex())
		}
		vc := VertexInside
		ec := EdgePointsInside
		cc := CellInside
		if side > 0 {
			vc = VertexOutside
			ec = EdgePointsOutside
			cc = CellOutside
		}
		a.setVertex(v1, vc)
		a.setEdge(edge, ec)
		if ptOnContour != nil {
			a.setVertex(v0, VertexOnContour)
			a.setEdge(edge.Twin(), EdgePointsToContour)
			a.setCell(cell, CellBoundary)
			if cell2.ContainsSegment() {
				a.setCell(cell2, CellBoundary)
			} else {
				a.setCell(cell2, cc)
			}
		} else {
			// v0's state is decided elsewhere.
			a.setCell(cell, cc)
			a.setCell(cell2, cc)
		}
	}
}

// expandPointEdges is pass 2: the edges still unknown separate two point
// cells. Wherever pass 1 labeled one of their endpoints, spread the label to
// the other endpoint, the edge pair and both cells. Returns the cells newly
// classified here as seeds for the fill.
func (a *Annotations) expandPointEdges(d *voronoi.Diagram) []voronoi.Cell {
	var queue []voronoi.Cell
	for i := 0; i < d.NumEdges(); i++ {
		if a.Edges[i] != EdgeUnknown {
			continue
		}
		edge := d.Edge(i)
		cell := edge.Cell()
		cell2 := edge.Twin().Cell()
		if !cell.ContainsPoint() || !cell2.ContainsPoint() {
			fatalf("half-edge %d next to segment cell survived local classification", i)
		}
		v0 := edge.Vertex0()
		vc := a.Vertices[v0.Index()]
		if vc == VertexUnknown {
			continue
		}
		if vc == VertexOnContour {
			fatalf("vertex %d between two point cells marked on-contour", v0.Index())
		}
		a.setVertex(edge.Vertex1(), vc)
		ec := EdgePointsInside
		cc := CellInside
		if vc == VertexOutside {
			ec = EdgePointsOutside
			cc = CellOutside
		}
		a.setEdge(edge, ec)
		a.setEdge(edge.Twin(), ec)
		for _, c := range [2]voronoi.Cell{cell, cell2} {
			cur := a.Cells[c.Index()]
			if cur == cc {
				continue
			}
			if cur != CellUnknown {
				fatalf("point cell %d classified %s from one side and %s from the other", c.Index(), cur, cc)
			}
			a.setCell(c, cc)
			queue = append(queue, c)
		}
	}
	return queue
}

// seedFill is pass 3: flood the remaining unknown edges outward from the
// cells pass 2 classified. Unlike the expansion pass, this also labels the
// edge endpoints, so regions surrounded entirely by point cells end up fully
// classified as well.
func (a *Annotations) seedFill(d *voronoi.Diagram, queue []voronoi.Cell) {
	for len(queue) > 0 {
		cell := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		cc := a.Cells[cell.Index()]
		if cc != CellInside && cc != CellOutside {
			fatalf("cell %d in fill queue has category %s", cell.Index(), cc)
		}
		ec := EdgePointsInside
		vc := VertexInside
		if cc == CellOutside {
			ec = EdgePointsOutside
			vc = VertexOutside
		}
		first := cell.IncidentEdge()
		for edge := first; ; {
			if a.Edges[edge.Index()] == EdgeUnknown {
				a.setEdge(edge, ec)
				a.setEdge(edge.Twin(), ec)
				if v := edge.Vertex0(); v != nil && a.Vertices[v.Index()] == VertexUnknown {
					a.setVertex(v, vc)
				}
				if v := edge.Vertex1(); v != nil && a.Vertices[v.Index()] == VertexUnknown {
					a.setVertex(v, vc)
				}
				cell2 := edge.Twin().Cell()
				cc2 := a.Cells[cell2.Index()]
				if cc2 != cc {
					if cc2 != CellUnknown {
						fatalf("cell %d classified %s next to %s region", cell2.Index(), cc2, cc)
					}
					a.setCell(cell2, cc)
					queue = append(queue, cell2)
				}
			}
			edge = edge.Next()
			if edge == first {
				break
			}
		}
	}
}

// Verify checks the structural invariants a complete annotation must satisfy.
// The engine's own passes enforce them by construction; Verify exists for
// callers and tests that want the guarantee spelled out.
func (a *Annotations) Verify(d *voronoi.Diagram) error {
	for i := range a.Vertices {
		if a.Vertices[i] == VertexUnknown {
			return errors.Errorf("vertex %d is unclassified", i)
		}
	}
	for i := range a.Edges {
		if a.Edges[i] == EdgeUnknown {
			return errors.Errorf("half-edge %d is unclassified", i)
		}
	}
	for i := range a.Cells {
		if a.Cells[i] == CellUnknown {
			return errors.Errorf("cell %d is unclassified", i)
		}
	}
	for i := 0; i < len(a.Edges); i += 2 {
		ec, ec2 := a.Edges[i], a.Edges[i+1]
		if (ec == EdgePointsInside && ec2 == EdgePointsOutside) ||
			(ec == EdgePointsOutside && ec2 == EdgePointsInside) {
			return errors.Errorf("half-edge pair %d/%d points inside one way and outside the other", i, i+1)
		}
	}

	for ci := 0; ci < d.NumCells(); ci++ {
		cell := d.Cell(ci)
		cc := a.Cells[ci]
		var onContour, inside, outside int
		var toContour, pointInside, pointOutside int
		first := cell.IncidentEdge()
		for edge := first; ; {
			switch a.Edges[edge.Index()] {
			case EdgePointsInside:
				pointInside++
			case EdgePointsOutside:
				pointOutside++
			case EdgePointsToContour:
				toContour++
			}
			if v1 := edge.Vertex1(); v1 == nil {
				outside++
			} else {
				switch a.Vertices[v1.Index()] {
				case VertexInside:
					inside++
				case VertexOutside:
					outside++
				case VertexOnContour:
					onContour++
				}
			}
			cc2 := a.Cells[edge.Twin().Cell().Index()]
			switch cc {
			case CellBoundary:
				if cc2 == CellBoundary && !edge.Twin().Cell().ContainsSegment() {
					return errors.Errorf("boundary cell %d touches a boundary point cell", ci)
				}
			case CellInside:
				if cc2 == CellOutside {
					return errors.Errorf("inside cell %d touches outside cell %d", ci, edge.Twin().Cell().Index())
				}
			case CellOutside:
				if cc2 == CellInside {
					return errors.Errorf("outside cell %d touches inside cell %d", ci, edge.Twin().Cell().Index())
				}
			}
			edge = edge.Next()
			if edge == first {
				break
			}
		}
		switch cc {
		case CellBoundary:
			if !cell.ContainsSegment() {
				return errors.Errorf("point cell %d marked Boundary", ci)
			}
			if toContour != 2 || onContour != 2 ||
				inside == 0 || outside == 0 || pointInside == 0 || pointOutside == 0 {
				return errors.Errorf(
					"boundary cell %d has inconsistent neighborhood (onContour=%d inside=%d outside=%d toContour=%d pointInside=%d pointOutside=%d)",
					ci, onContour, inside, outside, toContour, pointInside, pointOutside)
			}
		case CellInside:
			if onContour > 1 || toContour > 1 || inside == 0 || outside > 0 || pointInside == 0 || pointOutside > 0 {
				return errors.Errorf("inside cell %d has inconsistent neighborhood", ci)
			}
		case CellOutside:
			if onContour > 1 || toContour > 1 || outside == 0 || inside > 0 || pointOutside == 0 || pointInside > 0 {
				return errors.Errorf("outside cell %d has inconsistent neighborhood", ci)
			}
		}
	}

	for ci := 0; ci < d.NumCells(); ci++ {
		if d.Cell(ci).ContainsSegment() && a.Cells[ci] != CellBoundary {
			return errors.Errorf("segment cell %d is %s, want Boundary", ci, a.Cells[ci])
		}
	}
	return nil
}
