package gg3d

import (
	"fmt"
	"math"
)

// CurveKind selects the cubic basis a Curve is evaluated with.
type CurveKind int

const (
	// Bezier treats C1 and C2 as control points the curve is pulled toward.
	Bezier CurveKind = iota
	// Hermite treats C1 and C2 as the tangent vectors at P1 and P2.
	Hermite
)

// String returns the kind name.
func (k CurveKind) String() string {
	switch k {
	case Bezier:
		return "bezier"
	case Hermite:
		return "hermite"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Curve is a planar cubic from P1 to P2 shaped by C1 and C2. All four
// points are in canvas pixel space.
type Curve struct {
	Kind   CurveKind
	P1, P2 Point
	C1, C2 Point
}

// basis returns the constant matrix M and the 4×2 geometry matrix G so that
// the point at t is [t³ t² t 1] · M · G.
func (c Curve) basis() (m, g *Matrix[float64]) {
	var rows [4]Point
	switch c.Kind {
	case Hermite:
		m, _ = MatrixFromRows(
			[]float64{2, -2, 1, 1},
			[]float64{-3, 3, -2, -1},
			[]float64{0, 0, 1, 0},
			[]float64{1, 0, 0, 0},
		)
		rows = [4]Point{c.P1, c.P2, c.C1, c.C2}
	default:
		m, _ = MatrixFromRows(
			[]float64{-1, 3, -3, 1},
			[]float64{3, -6, 3, 0},
			[]float64{-3, 3, 0, 0},
			[]float64{1, 0, 0, 0},
		)
		rows = [4]Point{c.P1, c.C1, c.C2, c.P2}
	}
	g = NewMatrix[float64](4, 2)
	for i, p := range rows {
		g.Set(i, 0, p.X)
		g.Set(i, 1, p.Y)
	}
	return m, g
}

// MaxCurveSegments bounds the segment count accepted by Sample.
const MaxCurveSegments = 1 << 20

// Sample evaluates the curve at n+1 evenly spaced parameters t = 0, 1/n,
// …, 1. n is clamped to [1, MaxCurveSegments].
func (c Curve) Sample(n int) []Point {
	n = min(max(n, 1), MaxCurveSegments)
	m, g := c.basis()
	mg := mustMultiply(m, g)

	ts := NewMatrix[float64](n+1, 4)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		ts.Set(i, 0, t*t*t)
		ts.Set(i, 1, t*t)
		ts.Set(i, 2, t)
		ts.Set(i, 3, 1)
	}
	res := mustMultiply(ts, mg)

	pts := make([]Point, n+1)
	for i := range pts {
		pts[i] = Pt(res.At(i, 0), res.At(i, 1))
	}
	return pts
}

// DrawCurve draws curve as n line segments joining its samples. Segments
// with an endpoint beyond the projected-coordinate range are skipped.
func (c *Canvas) DrawCurve(curve Curve, n int, col Color) {
	pts := curve.Sample(n)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !inScreenRange(a) || !inScreenRange(b) {
			continue
		}
		x0, y0 := a.Pixel()
		x1, y1 := b.Pixel()
		c.DrawLine(x0, y0, x1, y1, col)
	}
}

func inScreenRange(p Point) bool {
	return math.Abs(p.X) <= maxScreenCoord && math.Abs(p.Y) <= maxScreenCoord
}
