package gg3d

import "math"

// Face is a planar convex polygon given by its vertices in order. Front
// faces list their vertices counter-clockwise as seen by the viewer.
type Face []Point3D

// Normal returns (p1-p0) × (p2-p0) for the first three vertices. ok is
// false when the face has fewer than three vertices or the normal is zero
// or not finite.
func (f Face) Normal() (n Point3D, ok bool) {
	if len(f) < 3 {
		return Point3D{}, false
	}
	n = f[1].Sub(f[0]).Cross(f[2].Sub(f[0]))
	m := n.Magnitude()
	if !(m > epsilon) || math.IsInf(m, 0) {
		return n, false
	}
	return n, true
}

// Fan returns the vertex indices of the triangles that cover the face,
// fanned out from vertex 0.
func (f Face) Fan() [][3]int {
	if len(f) < 3 {
		return nil
	}
	tris := make([][3]int, 0, len(f)-2)
	for i := 1; i+1 < len(f); i++ {
		tris = append(tris, [3]int{0, i, i + 1})
	}
	return tris
}

// Matrix returns the face's vertices as the columns of a 4×N homogeneous
// point matrix, ready to be transformed with a single multiplication.
func (f Face) Matrix() *Mat4 {
	m := NewMatrix[float64](4, 0)
	for _, p := range f {
		c := m.AddColumn()
		m.Set(0, c, p.X)
		m.Set(1, c, p.Y)
		m.Set(2, c, p.Z)
		m.Set(3, c, 1)
	}
	return m
}

// Model is an ordered list of faces. It is not modified by rendering.
type Model struct {
	Faces []Face
}

// Bounds returns the smallest box containing every vertex. ok is false for
// a model with no vertices.
func (m *Model) Bounds() (b Box, ok bool) {
	for _, f := range m.Faces {
		for _, p := range f {
			if !ok {
				b = Box{Min: p, Max: p}
				ok = true
				continue
			}
			b.Min = P3(min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z))
			b.Max = P3(max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z))
		}
	}
	return b, ok
}
