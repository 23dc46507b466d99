package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voroffset/offset"
	"github.com/osuushi/voroffset/voronoi"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Demo of Voronoi-based offsetting on an axis-aligned rectangle, the one
// shape the repo ships a diagram constructor for. Prints the offset polygons
// as newline separated "x y" points, one blank line between polygons, and can
// render a PNG of the input and result.
var (
	minCorner = kingpin.Flag("min", "Minimum rectangle corner as x,y.").Default("0,0").String()
	maxCorner = kingpin.Flag("max", "Maximum rectangle corner as x,y.").Default("10,10").String()
	delta     = kingpin.Flag("delta", "Signed offset distance; positive grows the rectangle.").Required().Float64()
	chordErr  = kingpin.Flag("error", "Maximum chord deviation when discretizing arcs.").Default("0.01").Float64()
	pngPath   = kingpin.Flag("png", "Render the input and result to this PNG file.").String()
	pngScale  = kingpin.Flag("scale", "Pixels per input unit in the PNG.").Default("20").Float64()
	cat       = kingpin.Flag("imgcat", "Also write the PNG to the terminal via imgcat.").Bool()
	dump      = kingpin.Flag("dump", "Dump the annotated diagram to stderr.").Bool()
)

func main() {
	kingpin.Parse()

	a, ok := parsePoint(*minCorner)
	if !ok {
		fatal("invalid --min %q", *minCorner)
	}
	c, ok := parsePoint(*maxCorner)
	if !ok {
		fatal("invalid --max %q", *maxCorner)
	}
	if a.X >= c.X || a.Y >= c.Y {
		fatal("--min must be strictly below --max in both coordinates")
	}
	if *delta == 0 {
		fatal("--delta must be nonzero")
	}

	d, lines := voronoi.Rectangle(a, c)
	ann := offset.Annotate(d, lines)
	if *dump {
		offset.DumpAnnotations(os.Stderr, d, ann)
	}
	if err := ann.Verify(d); err != nil {
		fatal("annotation failed: %v", err)
	}
	dists := offset.SignedVertexDistances(d, lines, ann)
	result := offset.Offset(d, lines, dists, *delta, *chordErr)

	for i, poly := range result {
		if i > 0 {
			fmt.Println()
		}
		for _, p := range poly.Points {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
	}
	if len(result) == 0 {
		fmt.Fprintln(os.Stderr, "offset collapsed to nothing")
	}

	if *pngPath != "" {
		input := []offset.Polygon{linesToPolygon(lines)}
		if err := offset.DrawPolygons(input, result, *pngScale, *pngPath, *cat); err != nil {
			fatal("rendering failed: %v", err)
		}
	}
}

func parsePoint(s string) (voronoi.Point, bool) {
	var p voronoi.Point
	n, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y)
	return p, err == nil && n == 2
}

func linesToPolygon(lines []voronoi.Line) offset.Polygon {
	var poly offset.Polygon
	for _, l := range lines {
		poly.Points = append(poly.Points, l.A.Vec())
	}
	return poly
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf(format, args...)))
	os.Exit(1)
}
