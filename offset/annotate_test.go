package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotateRectangles(t *testing.T) {
	for _, name := range rectFixtureNames {
		name := name
		t.Run(name, func(t *testing.T) {
			d, _, ann, _ := annotatedRect(t, name)

			assert.NoError(t, ann.Verify(d))

			t.Run("nothing stays unknown", func(t *testing.T) {
				for _, vc := range ann.Vertices {
					assert.NotEqual(t, VertexUnknown, vc)
				}
				for _, ec := range ann.Edges {
					assert.NotEqual(t, EdgeUnknown, ec)
				}
				for _, cc := range ann.Cells {
					assert.NotEqual(t, CellUnknown, cc)
				}
			})

			t.Run("cell categories", func(t *testing.T) {
				var inside, outside, boundary int
				for ci := 0; ci < d.NumCells(); ci++ {
					switch ann.Cells[ci] {
					case CellInside:
						inside++
					case CellOutside:
						outside++
					case CellBoundary:
						boundary++
					}
					if d.Cell(ci).ContainsSegment() {
						assert.Equal(t, CellBoundary, ann.Cells[ci])
					} else {
						// A convex corner's point cell lies fully outside.
						assert.Equal(t, CellOutside, ann.Cells[ci])
					}
				}
				assert.Equal(t, d.NumCells(), inside+outside+boundary)
				assert.Equal(t, 4, boundary)
				assert.Equal(t, 4, outside)
			})

			t.Run("twin pairs never disagree across the contour", func(t *testing.T) {
				for i := 0; i < d.NumEdges(); i += 2 {
					ec, ec2 := ann.Edges[i], ann.Edges[i+1]
					pointsIn := ec == EdgePointsInside || ec2 == EdgePointsInside
					pointsOut := ec == EdgePointsOutside || ec2 == EdgePointsOutside
					assert.False(t, pointsIn && pointsOut,
						"pair %d/%d is %s/%s", i, i+1, ec, ec2)
				}
			})

			t.Run("vertex categories", func(t *testing.T) {
				// The four corners are on the contour and the two skeleton
				// junctions are inside.
				var onContour, inside int
				for vi := 0; vi < d.NumVertices(); vi++ {
					switch ann.Vertices[vi] {
					case VertexOnContour:
						onContour++
					case VertexInside:
						inside++
					}
				}
				assert.Equal(t, 4, onContour)
				assert.Equal(t, 2, inside)
			})

			t.Run("edge categories", func(t *testing.T) {
				var toContour, pointsIn, pointsOut int
				for i := 0; i < d.NumEdges(); i++ {
					switch ann.Edges[i] {
					case EdgePointsToContour:
						toContour++
					case EdgePointsInside:
						pointsIn++
					case EdgePointsOutside:
						pointsOut++
					}
				}
				// Eight ray twins and four diagonal halves end on the
				// contour; the other diagonal halves and the middle pair
				// point inside; the outgoing rays point outside.
				assert.Equal(t, 12, toContour)
				assert.Equal(t, 6, pointsIn)
				assert.Equal(t, 8, pointsOut)
			})
		})
	}
}

func TestAnnotateIdempotent(t *testing.T) {
	for _, name := range rectFixtureNames {
		name := name
		t.Run(name, func(t *testing.T) {
			d, lines, ann, _ := annotatedRect(t, name)
			again := Annotate(d, lines)
			assert.Equal(t, ann.Vertices, again.Vertices)
			assert.Equal(t, ann.Edges, again.Edges)
			assert.Equal(t, ann.Cells, again.Cells)
		})
	}
}

func TestAnnotationsReset(t *testing.T) {
	d, _, ann, _ := annotatedRect(t, "square")
	ann.Reset()
	for _, vc := range ann.Vertices {
		assert.Equal(t, VertexUnknown, vc)
	}
	for _, ec := range ann.Edges {
		assert.Equal(t, EdgeUnknown, ec)
	}
	for _, cc := range ann.Cells {
		assert.Equal(t, CellUnknown, cc)
	}
	assert.Error(t, ann.Verify(d))
}
