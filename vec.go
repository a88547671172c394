package gg3d

import "math"

// Point3D is a 3D point or direction. There is no type-level distinction
// between positions, directions and normals; callers track which is which.
type Point3D struct {
	X, Y, Z float64
}

// P3 is a convenience function to create a Point3D.
func P3(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum p + q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference p - q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns the vector multiplied by k.
func (p Point3D) Scale(k float64) Point3D {
	return Point3D{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// Neg returns the negated vector.
func (p Point3D) Neg() Point3D {
	return Point3D{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// Dot returns the dot product of two vectors.
func (p Point3D) Dot(q Point3D) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the right-handed cross product p × q.
// Cross is anti-commutative: p.Cross(q) == q.Cross(p).Neg().
func (p Point3D) Cross(q Point3D) Point3D {
	return Point3D{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Magnitude returns the Euclidean length of the vector.
func (p Point3D) Magnitude() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalize returns a unit vector in the same direction.
// The second result is false when the vector is too short to normalize,
// in which case the zero vector is returned.
func (p Point3D) Normalize() (Point3D, bool) {
	m := p.Magnitude()
	if m < epsilon || math.IsNaN(m) || math.IsInf(m, 0) {
		return Point3D{}, false
	}
	return p.Scale(1 / m), true
}

// IsFinite reports whether every component is a finite number.
func (p Point3D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// Approx reports whether p and q are equal within tolerance eps per component.
func (p Point3D) Approx(q Point3D, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps && math.Abs(p.Z-q.Z) <= eps
}

// epsilon is the length below which vectors are treated as degenerate.
const epsilon = 1e-12
