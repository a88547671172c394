package gg3d

import "math"

// DrawLine draws the segment (x0, y0)–(x1, y1) with Bresenham's algorithm
// and no depth test. Both endpoints are plotted, and the same pixels are
// produced whichever endpoint comes first. Pixels outside the clip
// rectangle are dropped.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	if x0 > x1 || (x0 == x1 && y0 > y1) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if max(y0, y1) < c.clip.Min.Y || min(y0, y1) >= c.clip.Max.Y ||
		x1 < c.clip.Min.X || x0 >= c.clip.Max.X {
		return
	}

	// Very long segments are first cut to the buffer so the walk stays
	// proportional to the canvas. The cut uses the whole buffer rather than
	// the clip rectangle so every band of a split canvas walks the same
	// pixels.
	if int64(x1-x0)+absInt64(int64(y1-y0)) > 4*int64(c.width+c.height) {
		var ok bool
		x0, y0, x1, y1, ok = c.cutLine(x0, y0, x1, y1)
		if !ok {
			return
		}
	}

	dx := x1 - x0
	dy := absInt(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0++
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// cutLine clips the segment to the buffer grown by one pixel on each side
// (Liang-Barsky) and rounds the new endpoints back to pixels.
func (c *Canvas) cutLine(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0 + 1},
		{dx, float64(c.width) - fx0},
		{-dy, fy0 + 1},
		{dy, float64(c.height) - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return roundPixel(fx0 + t0*dx), roundPixel(fy0 + t0*dy),
		roundPixel(fx0 + t1*dx), roundPixel(fy0 + t1*dy), true
}

// roundPixel rounds a screen coordinate half up to the nearest pixel.
func roundPixel(v float64) int {
	return int(math.Floor(v + 0.5))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
