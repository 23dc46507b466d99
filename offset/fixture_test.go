package offset

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/osuushi/voroffset/voronoi"
)

// This file parses the SVG fixtures into input rectangles and provides the
// shared helpers the offset tests run on. The parser is not a full (or even
// correct) SVG handler: it finds the single polygon element, requires it to
// be an axis-aligned rectangle with integer corners, and exits through
// log.Fatalf on anything else.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadRectFixture(name string) (voronoi.Point, voronoi.Point) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Fixture %q has %d polygons, want exactly one", name, len(polygons))
	}

	var pts []voronoi.Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseInt(coords[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseInt(coords[1], 10, 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		pts = append(pts, voronoi.Point{X: x, Y: y})
	}
	if len(pts) != 4 {
		log.Fatalf("Fixture %q is not a rectangle", name)
	}
	min := pts[0]
	max := pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	for _, p := range pts {
		if (p.X != min.X && p.X != max.X) || (p.Y != min.Y && p.Y != max.Y) {
			log.Fatalf("Fixture %q is not axis-aligned", name)
		}
	}
	return min, max
}

var rectFixtureNames = []string{"square", "rect_wide", "rect_tall"}

// annotatedRect builds the reference diagram for a fixture and runs the
// annotator and the distance table over it.
func annotatedRect(t *testing.T, name string) (*voronoi.Diagram, []voronoi.Line, *Annotations, []float64) {
	t.Helper()
	a, c := LoadRectFixture(name)
	d, lines := voronoi.Rectangle(a, c)
	ann := Annotate(d, lines)
	dists := SignedVertexDistances(d, lines, ann)
	return d, lines, ann, dists
}

// inputPolygon converts the segment loop back into a point loop for the
// point-in-polygon checks.
func inputPolygon(lines []voronoi.Line) Polygon {
	var poly Polygon
	for _, l := range lines {
		poly.Points = append(poly.Points, l.A.Vec())
	}
	return poly
}

// bruteBoundaryDistance is the straightforward minimum distance from p to any
// point of the boundary segments, for checking the engine's cleverer answer.
func bruteBoundaryDistance(lines []voronoi.Line, p r2.Point) float64 {
	min := math.Inf(1)
	for _, line := range lines {
		a := line.A.Vec()
		v := line.Vector()
		t := p.Sub(a).Dot(v) / norm2(v)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		dist := p.Sub(a.Add(v.Mul(t))).Norm()
		if dist < min {
			min = dist
		}
	}
	return min
}

// siteDistance measures from p to the owning site of a cell: the point site
// itself, or the segment site's carrier line.
func siteDistance(cell voronoi.Cell, lines []voronoi.Line, p r2.Point) float64 {
	if cell.ContainsPoint() {
		return p.Sub(cell.ContourPoint(lines).Vec()).Norm()
	}
	line := lines[cell.SourceIndex()]
	return rayPointDistance(line.A.Vec(), line.Vector(), p)
}
