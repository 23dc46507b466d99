package offset

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering of traced offset curves next to their input contour. Not
// part of the offsetting pipeline; the CLI and ad-hoc debugging use it.

const drawPadding = 10

// DrawPolygons renders the polygon lists to a PNG, input first (filled),
// results on top (stroked). If cat is set, the image is also written to the
// terminal through imgcat.
func DrawPolygons(input, result []Polygon, scale float64, path string, cat bool) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pl := range [2][]Polygon{input, result} {
		for _, poly := range pl {
			for _, p := range poly.Points {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	trace := func(pl []Polygon) {
		for _, poly := range pl {
			if len(poly.Points) == 0 {
				continue
			}
			c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
			for _, p := range poly.Points[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
		}
	}

	c.SetLineWidth(2)
	trace(input)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 0.25, 0)
	c.Stroke()

	trace(result)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if err := c.SavePNG(path); err != nil {
		return err
	}
	if cat {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
