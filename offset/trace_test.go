package offset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetOutwardSquare(t *testing.T) {
	d, lines, _, dists := annotatedRect(t, "square")
	result := Offset(d, lines, dists, 0.1, 0.01)

	if !assert.Len(t, result, 1) {
		return
	}
	poly := result[0]
	assert.True(t, poly.IsCCW())

	// Four side points, four corner points, and one arc subdivision per
	// corner at this tolerance.
	assert.Len(t, poly.Points, 12)

	// Rounded-square area: the square, four side strips, one full circle of
	// corner rounding. The chords cut slightly into the arcs, never out.
	want := 1 + 4*0.1 + math.Pi*0.01
	area := poly.SignedArea()
	assert.Less(t, area, want+1e-9)
	assert.InDelta(t, want, area, 0.005)

	// Every traced vertex sits at the offset distance from the boundary.
	for _, p := range poly.Points {
		assert.InDelta(t, 0.1, bruteBoundaryDistance(lines, p), 1e-9)
		assert.False(t, inputPolygon(lines).ContainsPointByEvenOdd(p))
	}
}

func TestOffsetInwardSquare(t *testing.T) {
	d, lines, _, dists := annotatedRect(t, "square")
	result := Offset(d, lines, dists, -0.1, 0.01)

	if !assert.Len(t, result, 1) {
		return
	}
	poly := result[0]
	assert.True(t, poly.IsCCW())
	assert.Len(t, poly.Points, 4)
	assert.InDelta(t, 0.64, poly.SignedArea(), 1e-9)

	for _, want := range []struct{ x, y float64 }{
		{0.1, 0.1}, {0.9, 0.1}, {0.9, 0.9}, {0.1, 0.9},
	} {
		found := false
		for _, p := range poly.Points {
			if math.Abs(p.X-want.x) < 1e-9 && math.Abs(p.Y-want.y) < 1e-9 {
				found = true
			}
		}
		assert.True(t, found, "missing corner (%g, %g)", want.x, want.y)
	}
	for _, p := range poly.Points {
		assert.InDelta(t, 0.1, bruteBoundaryDistance(lines, p), 1e-9)
		assert.True(t, inputPolygon(lines).ContainsPointByEvenOdd(p))
	}
}

func TestOffsetCollapse(t *testing.T) {
	// Shrinking the unit square by half its side leaves nothing.
	d, lines, _, dists := annotatedRect(t, "square")
	assert.Empty(t, Offset(d, lines, dists, -0.5, 0.01))
}

func TestOffsetInwardRectangles(t *testing.T) {
	cases := []struct {
		name     string
		delta    float64
		wantArea float64
	}{
		{"rect_wide", -0.2, (10 - 0.4) * (4 - 0.4)},
		{"rect_tall", -0.5, (4 - 1) * (14 - 1)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d, lines, _, dists := annotatedRect(t, tc.name)
			result := Offset(d, lines, dists, tc.delta, 0.01)
			if assert.Len(t, result, 1) {
				assert.True(t, result[0].IsCCW())
				assert.Len(t, result[0].Points, 4)
				assert.InDelta(t, tc.wantArea, result[0].SignedArea(), 1e-9)
			}
		})
	}
}

func TestOffsetDiscretizationGranularity(t *testing.T) {
	// The angular step is 2*acos((r-ε)/r); a quarter-circle corner is split
	// into ceil((π/2)/step) chords.
	d, lines, _, dists := annotatedRect(t, "square")

	coarse := Offset(d, lines, dists, 1, 0.1)
	fine := Offset(d, lines, dists, 1, 0.001)
	if !assert.Len(t, coarse, 1) || !assert.Len(t, fine, 1) {
		return
	}
	// 8 boundary points plus 4·(2-1) subdivisions.
	assert.Len(t, coarse[0].Points, 12)
	// 8 boundary points plus 4·(18-1) subdivisions.
	assert.Len(t, fine[0].Points, 76)

	// The fine discretization must track the true circle tightly, including
	// between the coarse chords.
	for _, p := range fine[0].Points {
		assert.InDelta(t, 1, bruteBoundaryDistance(lines, p), 1e-9)
	}
}

func TestOffsetMonotoneArea(t *testing.T) {
	d, lines, _, dists := annotatedRect(t, "rect_wide")

	t.Run("outward growth", func(t *testing.T) {
		prev := 0.0
		for _, delta := range []float64{0.1, 0.5, 1, 2} {
			result := Offset(d, lines, dists, delta, 0.01)
			if assert.Len(t, result, 1) {
				area := result[0].SignedArea()
				assert.Greater(t, area, prev)
				prev = area
			}
		}
	})

	t.Run("inward shrinkage", func(t *testing.T) {
		prev := math.Inf(1)
		for _, delta := range []float64{-0.1, -0.5, -1, -1.5} {
			result := Offset(d, lines, dists, delta, 0.01)
			if assert.Len(t, result, 1) {
				area := result[0].SignedArea()
				assert.Less(t, area, prev)
				prev = area
			}
		}
	})
}

func TestOffsetAccuracyProperty(t *testing.T) {
	// Every vertex of every traced polygon sits within the chord tolerance
	// of the true offset curve; the vertices themselves lie exactly on it.
	for _, name := range rectFixtureNames {
		for _, delta := range []float64{0.25, -0.25} {
			d, lines, _, dists := annotatedRect(t, name)
			for _, poly := range Offset(d, lines, dists, delta, 0.01) {
				for _, p := range poly.Points {
					assert.InDelta(t, 0.25, bruteBoundaryDistance(lines, p), 1e-6,
						"%s at delta %g", name, delta)
				}
			}
		}
	}
}

func TestOffsetValidatesArguments(t *testing.T) {
	d, lines, _, dists := annotatedRect(t, "square")
	assert.Panics(t, func() { Offset(d, lines, dists, 0, 0.01) })
	assert.Panics(t, func() { Offset(d, lines, dists, 0.1, 0) })
}
