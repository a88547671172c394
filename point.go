package gg3d

// Point is a 2D point or vector in canvas pixel space, used by curves.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pixel rounds the point half up to pixel coordinates.
func (p Point) Pixel() (x, y int) {
	return roundPixel(p.X), roundPixel(p.Y)
}
