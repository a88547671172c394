package gg3d

// Vertex is a projected point: integer pixel coordinates plus depth.
type Vertex struct {
	X, Y int
	Z    float64
}

// DrawTriangle fills the triangle p0 p1 p2 with col, testing every pixel against
// the depth buffer. Depth is interpolated linearly along the edges and
// across each scanline.
//
// The vertices are sorted by y with a stable sort, so vertices sharing a y
// keep their argument order. Zero-area triangles draw at most the segment
// they collapse to.
func (c *Canvas) DrawTriangle(p0, p1, p2 Vertex, col Color) {
	v1, v2, v3 := sortByY(p0, p1, p2)
	if v3.Y < c.clip.Min.Y || v1.Y >= c.clip.Max.Y {
		return
	}

	if v1.Y == v3.Y {
		c.scanline(v1.Y, v1.X, v1.Z, v2.X, v2.Z, col)
		c.scanline(v1.Y, v2.X, v2.Z, v3.X, v3.Z, col)
		return
	}

	long := newEdge(v1, v3)

	// Upper part, rows v1.Y..v2.Y inclusive. A flat top is a single span.
	if v1.Y == v2.Y {
		c.scanline(v1.Y, v1.X, v1.Z, v2.X, v2.Z, col)
	} else {
		short := newEdge(v1, v2)
		from, to := c.rowRange(v1.Y, v2.Y)
		for y := from; y <= to; y++ {
			long.seek(y)
			short.seek(y)
			c.scanline(y, long.x, long.z(), short.x, short.z(), col)
		}
	}

	// Lower part, rows v2.Y+1..v3.Y.
	if v2.Y == v3.Y {
		return
	}
	short := newEdge(v2, v3)
	from, to := c.rowRange(v2.Y+1, v3.Y)
	for y := from; y <= to; y++ {
		long.seek(y)
		short.seek(y)
		c.scanline(y, long.x, long.z(), short.x, short.z(), col)
	}
}

// sortByY orders three vertices by ascending y. Ties keep argument order.
func sortByY(a, b, c Vertex) (Vertex, Vertex, Vertex) {
	if b.Y < a.Y {
		a, b = b, a
	}
	if c.Y < b.Y {
		b, c = c, b
		if b.Y < a.Y {
			a, b = b, a
		}
	}
	return a, b, c
}

// rowRange intersects the rows [from, to] with the clip rectangle. The
// result is empty (from > to) when they do not overlap.
func (c *Canvas) rowRange(from, to int) (int, int) {
	return max(from, c.clip.Min.Y), min(to, c.clip.Max.Y-1)
}

// scanline fills row y between xa and xb inclusive, interpolating depth
// linearly from za to zb.
func (c *Canvas) scanline(y, xa int, za float64, xb int, zb float64, col Color) {
	if y < c.clip.Min.Y || y >= c.clip.Max.Y {
		return
	}
	if xa > xb {
		xa, xb = xb, xa
		za, zb = zb, za
	}
	if xa == xb {
		c.SetPixelDepth(xa, y, min(za, zb), col)
		return
	}
	dz := (zb - za) / float64(xb-xa)
	lo := max(xa, c.clip.Min.X)
	hi := min(xb, c.clip.Max.X-1)
	for x := lo; x <= hi; x++ {
		c.SetPixelDepth(x, y, za+float64(x-xa)*dz, col)
	}
}

// edge walks a triangle edge one row at a time. x advances by dx/dy per row
// using an integer error accumulator so no rounding drift builds up; depth
// is computed from the row count so skipping rows gives the same value as
// stepping through them.
type edge struct {
	y   int
	x   int
	sx  int
	dx  int64
	dy  int64
	err int64

	k  int
	z0 float64
	dz float64
}

func newEdge(from, to Vertex) edge {
	e := edge{
		y:  from.Y,
		x:  from.X,
		sx: 1,
		dx: int64(to.X) - int64(from.X),
		dy: int64(to.Y) - int64(from.Y),
		z0: from.Z,
	}
	if e.dx < 0 {
		e.sx = -1
		e.dx = -e.dx
	}
	if e.dy > 0 {
		e.dz = (to.Z - from.Z) / float64(e.dy)
	}
	return e
}

// seek moves the edge forward to row y. Rows already passed are ignored.
func (e *edge) seek(y int) {
	n := y - e.y
	if n <= 0 || e.dy == 0 {
		return
	}
	e.err += int64(n) * e.dx
	e.x += e.sx * int(e.err/e.dy)
	e.err %= e.dy
	e.y = y
	e.k += n
}

func (e *edge) z() float64 {
	return e.z0 + float64(e.k)*e.dz
}
