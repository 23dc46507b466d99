package voronoi

// Rectangle builds the Voronoi diagram of a single axis-aligned rectangle
// with opposite corners a (minimum) and c (maximum), together with its four
// boundary segments in counterclockwise order. The diagram of a rectangle is
// known analytically, which makes this the reference producer for the offset
// engine's tests and demos: four segment cells, four corner point cells, two
// interior skeleton vertices joined by a middle bisector (coincident for a
// square), and eight secondary rays leaving the corners.
//
// The skeleton of a wide rectangle, with the middle bisector horizontal:
/*
	d________________________c
	|\                      /|
	| \______skeleton______/ |
	| /m1                m2\ |
	|/______________________\|
	a                        b
*/
// For a tall rectangle the picture is rotated a quarter turn; for a square
// m1 and m2 coincide at the center (the middle bisector has zero length).
func Rectangle(a, c Point) (*Diagram, []Line) {
	if a.X >= c.X || a.Y >= c.Y {
		panic("voronoi: rectangle corners must satisfy a.X < c.X and a.Y < c.Y")
	}
	bPt := Point{c.X, a.Y}
	dPt := Point{a.X, c.Y}
	lines := []Line{
		{a, bPt}, // bottom
		{bPt, c}, // right
		{c, dPt}, // top
		{dPt, a}, // left
	}

	w := float64(c.X - a.X)
	h := float64(c.Y - a.Y)
	wide := w >= h

	b := NewBuilder()

	// Cells. The corner point cells carry the start point of the segment
	// leaving the corner.
	s0 := b.AddSegmentCell(0)
	s1 := b.AddSegmentCell(1)
	s2 := b.AddSegmentCell(2)
	s3 := b.AddSegmentCell(3)
	pa := b.AddPointCell(0, SegmentStartPoint)
	pb := b.AddPointCell(1, SegmentStartPoint)
	pc := b.AddPointCell(2, SegmentStartPoint)
	pd := b.AddPointCell(3, SegmentStartPoint)

	// Vertices: the four corners sit on the contour; m1 and m2 are the
	// skeleton junctions where three segment cells meet.
	x0, y0 := float64(a.X), float64(a.Y)
	x1, y1 := float64(c.X), float64(c.Y)
	va := b.AddVertex(x0, y0)
	vb := b.AddVertex(x1, y0)
	vc := b.AddVertex(x1, y1)
	vd := b.AddVertex(x0, y1)
	var m1, m2 int
	if wide {
		m1 = b.AddVertex(x0+h/2, y0+h/2)
		m2 = b.AddVertex(x1-h/2, y0+h/2)
	} else {
		m1 = b.AddVertex(x0+w/2, y0+w/2)
		m2 = b.AddVertex(x0+w/2, y1-w/2)
	}

	// Bisectors. Each pair's first half-edge has its first cell on the left.
	// The corner diagonals run at 45 degrees between adjacent segment cells;
	// the middle bisector separates the two long sides' cells.
	var diagB0, diagB1, diagD0, diagD1, mid0, mid1 int
	aM1, m1A := b.AddEdgePair(s3, s0, va, m1, false, true)
	if wide {
		diagB0, diagB1 = b.AddEdgePair(s0, s1, vb, m2, false, true)
	} else {
		diagB0, diagB1 = b.AddEdgePair(s0, s1, vb, m1, false, true)
	}
	cM2, m2C := b.AddEdgePair(s1, s2, vc, m2, false, true)
	if wide {
		diagD0, diagD1 = b.AddEdgePair(s2, s3, vd, m1, false, true)
		mid0, mid1 = b.AddEdgePair(s0, s2, m2, m1, false, true)
	} else {
		diagD0, diagD1 = b.AddEdgePair(s2, s3, vd, m2, false, true)
		mid0, mid1 = b.AddEdgePair(s3, s1, m1, m2, false, true)
	}

	// Secondary rays: perpendicular to the adjacent segment at each corner,
	// running off to infinity.
	aDown, downA := b.AddEdgePair(s0, pa, va, -1, true, true)
	aLeft, leftA := b.AddEdgePair(pa, s3, va, -1, true, true)
	bDown, downB := b.AddEdgePair(pb, s0, vb, -1, true, true)
	bRight, rightB := b.AddEdgePair(s1, pb, vb, -1, true, true)
	cRight, rightC := b.AddEdgePair(pc, s1, vc, -1, true, true)
	cUp, upC := b.AddEdgePair(s2, pc, vc, -1, true, true)
	dUp, upD := b.AddEdgePair(pd, s2, vd, -1, true, true)
	dLeft, leftD := b.AddEdgePair(s3, pd, vd, -1, true, true)

	chain := func(cycle ...int) {
		for i, e := range cycle {
			b.SetNext(e, cycle[(i+1)%len(cycle)])
		}
	}

	if wide {
		chain(diagB0, mid0, m1A, aDown, downB) // s0: b→m2, m2→m1, m1→a, a→down, down→b
		chain(diagB1, bRight, rightC, cM2)     // s1: m2→b, b→right, right→c, c→m2
		chain(mid1, m2C, cUp, upD, diagD0)     // s2: m1→m2, m2→c, c→up, up→d, d→m1
		chain(aM1, diagD1, dLeft, leftA)       // s3: a→m1, m1→d, d→left, left→a
	} else {
		chain(diagB0, m1A, aDown, downB)         // s0: b→m1, m1→a, a→down, down→b
		chain(mid1, diagB1, bRight, rightC, cM2) // s1: m2→m1, m1→b, b→right, right→c, c→m2
		chain(m2C, cUp, upD, diagD0)             // s2: m2→c, c→up, up→d, d→m2
		chain(aM1, mid0, diagD1, dLeft, leftA)   // s3: a→m1, m1→m2, m2→d, d→left, left→a
	}
	chain(downA, aLeft)  // pa
	chain(bDown, rightB) // pb
	chain(cRight, upC)   // pc
	chain(dUp, leftD)    // pd

	d, err := b.Finish()
	if err != nil {
		// The wiring above is fixed; a failure here is a programming error.
		panic(err)
	}
	return d, lines
}
