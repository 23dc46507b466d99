package offset

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voroffset/dbg"
	"github.com/osuushi/voroffset/voronoi"
)

// DumpAnnotations writes a colored, human-readable listing of the annotated
// diagram, one line per cell with its half-edge cycle. Debugging aid only.
func DumpAnnotations(w io.Writer, d *voronoi.Diagram, ann *Annotations) {
	for ci := 0; ci < d.NumCells(); ci++ {
		cell := d.Cell(ci)
		kind := "segment"
		if cell.ContainsPoint() {
			kind = "point"
		}
		fmt.Fprintf(w, "cell %s (%s %d, source %d): %s\n",
			dbg.Name(cell), kind, ci, cell.SourceIndex(), colorCell(ann.Cells[ci]))
		first := cell.IncidentEdge()
		for edge := first; ; {
			v0, v1 := "∞", "∞"
			if v := edge.Vertex0(); v != nil {
				v0 = fmt.Sprintf("%d %s", v.Index(), colorVertex(ann.Vertices[v.Index()]))
			}
			if v := edge.Vertex1(); v != nil {
				v1 = fmt.Sprintf("%d %s", v.Index(), colorVertex(ann.Vertices[v.Index()]))
			}
			fmt.Fprintf(w, "  edge %s (%d): %s → %s, %s\n",
				dbg.Name(edge), edge.Index(), v0, v1, colorEdge(ann.Edges[edge.Index()]))
			edge = edge.Next()
			if edge == first {
				break
			}
		}
	}
}

func colorVertex(c VertexCategory) aurora.Value {
	switch c {
	case VertexInside:
		return aurora.Green(c)
	case VertexOutside:
		return aurora.Red(c)
	case VertexOnContour:
		return aurora.Yellow(c)
	}
	return aurora.Magenta(c)
}

func colorEdge(c EdgeCategory) aurora.Value {
	switch c {
	case EdgePointsInside:
		return aurora.Green(c)
	case EdgePointsOutside:
		return aurora.Red(c)
	case EdgePointsToContour:
		return aurora.Yellow(c)
	}
	return aurora.Magenta(c)
}

func colorCell(c CellCategory) aurora.Value {
	switch c {
	case CellInside:
		return aurora.Green(c)
	case CellOutside:
		return aurora.Red(c)
	case CellBoundary:
		return aurora.Blue(c)
	}
	return aurora.Magenta(c)
}
