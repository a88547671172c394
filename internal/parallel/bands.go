package parallel

import "image"

// Bands splits a width×height area into at most n horizontal strips that
// cover every row exactly once. Strip heights differ by at most one row.
// It returns nil for an empty area; n below 1 is treated as 1.
func Bands(width, height, n int) []image.Rectangle {
	if width <= 0 || height <= 0 {
		return nil
	}
	n = min(max(n, 1), height)

	bands := make([]image.Rectangle, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, image.Rect(0, y, width, y+h))
		y += h
	}
	return bands
}
