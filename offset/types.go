package offset

import (
	"github.com/golang/geo/r2"
)

// Categories computed by Annotate. They describe where each element of the
// Voronoi diagram sits relative to the input polygons, which is what lets the
// tracer decide which side of the diagram an offset curve traverses.

type VertexCategory uint8

const (
	VertexUnknown VertexCategory = iota
	VertexInside
	VertexOutside
	VertexOnContour
)

func (c VertexCategory) String() string {
	return [...]string{"Unknown", "Inside", "Outside", "OnContour"}[c]
}

// EdgeCategory describes where the destination end of a half-edge points.
type EdgeCategory uint8

const (
	EdgeUnknown EdgeCategory = iota
	EdgePointsInside
	EdgePointsOutside
	EdgePointsToContour
)

func (c EdgeCategory) String() string {
	return [...]string{"Unknown", "PointsInside", "PointsOutside", "PointsToContour"}[c]
}

type CellCategory uint8

const (
	CellUnknown CellCategory = iota
	CellInside
	CellOutside
	// CellBoundary marks a cell whose site lies on the contour such that the
	// cell straddles both sides. Only segment cells are Boundary; a corner's
	// point cell lies wholly outside (convex corner) or inside (reflex corner).
	CellBoundary
)

func (c CellCategory) String() string {
	return [...]string{"Unknown", "Inside", "Outside", "Boundary"}[c]
}

// Annotations holds the category of every vertex, half-edge and cell of a
// diagram, indexed by element ordinal. Keeping them outside the diagram keeps
// the graph itself immutable.
type Annotations struct {
	Vertices []VertexCategory
	Edges    []EdgeCategory
	Cells    []CellCategory
}

// Reset clears every category back to Unknown.
func (a *Annotations) Reset() {
	for i := range a.Vertices {
		a.Vertices[i] = VertexUnknown
	}
	for i := range a.Edges {
		a.Edges[i] = EdgeUnknown
	}
	for i := range a.Cells {
		a.Cells[i] = CellUnknown
	}
}

// Polygon is a closed loop of points; the edge from the last point back to
// the first is implied. Counterclockwise loops are solid, clockwise loops are
// holes.
type Polygon struct {
	Points []r2.Point
}

// SignedArea is positive for counterclockwise loops.
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i, a := range p.Points {
		b := p.Points[(i+1)%len(p.Points)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func (p Polygon) Area() float64 {
	area := p.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (p Polygon) IsCCW() bool {
	return p.SignedArea() > 0
}

func (p Polygon) Reverse() Polygon {
	out := Polygon{Points: make([]r2.Point, len(p.Points))}
	for i, pt := range p.Points {
		out.Points[len(p.Points)-1-i] = pt
	}
	return out
}

// ContainsPointByEvenOdd is a winding-rule point-in-polygon test. It is
// provided primarily for checking distance signs in tests; points exactly on
// the boundary give an arbitrary answer.
func (p Polygon) ContainsPointByEvenOdd(pt r2.Point) bool {
	return p.CrossingCount(pt)%2 == 1
}

// CrossingCount counts edges crossed by the ray from pt toward +x.
func (p Polygon) CrossingCount(pt r2.Point) int {
	count := 0
	for i, a := range p.Points {
		b := p.Points[(i+1)%len(p.Points)]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > pt.X {
				count++
			}
		}
	}
	return count
}
