package gg3d

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProjection is returned when a projection or windowing transform
// would divide by zero: an empty source box or a bad near/far pair.
var ErrInvalidProjection = errors.New("gg3d: invalid projection")

// Box is an axis-aligned box spanning [Min, Max] on each axis.
type Box struct {
	Min, Max Point3D
}

// CanonicalBox is the [-1, 1]³ cube that orthographic projection targets.
var CanonicalBox = Box{Min: P3(-1, -1, -1), Max: P3(1, 1, 1)}

// Size returns the extent of the box along each axis.
func (b Box) Size() Point3D {
	return b.Max.Sub(b.Min)
}

// Translate creates a 4×4 homogeneous translation matrix.
func Translate(tx, ty, tz float64) *Mat4 {
	m := Identity[float64](4)
	m.Set(0, 3, tx)
	m.Set(1, 3, ty)
	m.Set(2, 3, tz)
	return m
}

// Scale creates a 4×4 homogeneous scaling matrix.
func Scale(sx, sy, sz float64) *Mat4 {
	m := NewMatrix[float64](4, 4)
	m.Set(0, 0, sx)
	m.Set(1, 1, sy)
	m.Set(2, 2, sz)
	m.Set(3, 3, 1)
	return m
}

// Rotation creates the change-of-basis matrix whose rows are u, v and w.
// For an orthonormal basis it maps u to the x axis, v to y and w to z.
func Rotation(u, v, w Point3D) *Mat4 {
	m := NewMatrix[float64](4, 4)
	for c, x := range [3]float64{u.X, u.Y, u.Z} {
		m.Set(0, c, x)
	}
	for c, x := range [3]float64{v.X, v.Y, v.Z} {
		m.Set(1, c, x)
	}
	for c, x := range [3]float64{w.X, w.Y, w.Z} {
		m.Set(2, c, x)
	}
	m.Set(3, 3, 1)
	return m
}

// Windowing maps the box src onto dst, independently per axis:
//
//	Translate(dst.Min) · Scale(dst.Size / src.Size) · Translate(-src.Min)
//
// It fails if src is empty along any axis.
func Windowing(src, dst Box) (*Mat4, error) {
	ss := src.Size()
	if ss.X == 0 || ss.Y == 0 || ss.Z == 0 {
		return nil, fmt.Errorf("%w: empty source box %v", ErrInvalidProjection, src)
	}
	ds := dst.Size()
	return mustMultiply(
		mustMultiply(
			Translate(dst.Min.X, dst.Min.Y, dst.Min.Z),
			Scale(ds.X/ss.X, ds.Y/ss.Y, ds.Z/ss.Z),
		),
		Translate(-src.Min.X, -src.Min.Y, -src.Min.Z),
	), nil
}

// Orthographic maps the box [l,r]×[b,t]×[n,f] onto the canonical cube.
func Orthographic(l, r, b, t, n, f float64) (*Mat4, error) {
	return Windowing(Box{Min: P3(l, b, n), Max: P3(r, t, f)}, CanonicalBox)
}

// Viewport maps the canonical cube onto pixel space: x to [-0.5, width-0.5],
// y to [-0.5, height-0.5] (row 0 at the bottom) and depth to [0, 1].
func Viewport(width, height int) *Mat4 {
	m, err := Windowing(CanonicalBox, ViewportBox(width, height))
	if err != nil {
		// CanonicalBox is never empty.
		panic(err)
	}
	return m
}

// ViewportBox returns the destination box used by Viewport.
func ViewportBox(width, height int) Box {
	return Box{
		Min: P3(-0.5, -0.5, 0),
		Max: P3(float64(width)-0.5, float64(height)-0.5, 1),
	}
}

// Perspective maps the frustum with near plane n and far plane f (both
// distances in front of the eye, 0 < n < f) into the box [.,.]×[.,.]×[n,f]:
//
//	| n  0   0    0  |
//	| 0  n   0    0  |
//	| 0  0  n+f  -fn |
//	| 0  0   1    0  |
//
// The last row copies the eye-space depth into w for the perspective divide.
func Perspective(n, f float64) (*Mat4, error) {
	if !(n > 0 && f > n) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: need 0 < near < far, got near=%g far=%g", ErrInvalidProjection, n, f)
	}
	m := NewMatrix[float64](4, 4)
	m.Set(0, 0, n)
	m.Set(1, 1, n)
	m.Set(2, 2, n+f)
	m.Set(2, 3, -f*n)
	m.Set(3, 2, 1)
	return m, nil
}

// Homogeneous is a transformed point before the perspective divide.
type Homogeneous struct {
	X, Y, Z, W float64
}

// Divide performs the perspective divide. ok is false when w is not
// strictly positive, meaning the point lies on or behind the eye plane.
func (h Homogeneous) Divide() (p Point3D, ok bool) {
	if !(h.W > epsilon) {
		return Point3D{}, false
	}
	p = P3(h.X/h.W, h.Y/h.W, h.Z/h.W)
	return p, p.IsFinite()
}

// Apply transforms the point (p.X, p.Y, p.Z, 1) by the 4×4 matrix m.
func Apply(m *Mat4, p Point3D) Homogeneous {
	in := [4]float64{p.X, p.Y, p.Z, 1}
	var out [4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r] += m.At(r, c) * in[c]
		}
	}
	return Homogeneous{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// ApplyColumns transforms every column of the 4×N point matrix pts by m
// with a single multiplication.
func ApplyColumns(m *Mat4, pts *Mat4) ([]Homogeneous, error) {
	res, err := m.Multiply(pts)
	if err != nil {
		return nil, err
	}
	out := make([]Homogeneous, res.Cols())
	for c := range out {
		col := res.Column(c)
		out[c] = Homogeneous{X: col[0], Y: col[1], Z: col[2], W: col[3]}
	}
	return out, nil
}

// Projection describes how camera space is mapped to pixels.
type Projection struct {
	Width, Height int
	// Scale is the number of pixels covered by one world unit at unit
	// distance from the eye.
	Scale float64
	// Near and Far bound the depth range, measured from the eye.
	Near, Far float64
}

// Matrix returns Viewport · Orthographic · Perspective for the projection.
// The orthographic box is sized so that a point at (x, y, z) in camera space
// lands Scale·x/z pixels from the image centre.
func (pr Projection) Matrix() (*Mat4, error) {
	if pr.Width <= 0 || pr.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, pr.Width, pr.Height)
	}
	if !(pr.Scale > 0) {
		return nil, fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidProjection, pr.Scale)
	}
	persp, err := Perspective(pr.Near, pr.Far)
	if err != nil {
		return nil, err
	}
	hw := float64(pr.Width) * pr.Near / (2 * pr.Scale)
	hh := float64(pr.Height) * pr.Near / (2 * pr.Scale)
	ortho, err := Orthographic(-hw, hw, -hh, hh, pr.Near, pr.Far)
	if err != nil {
		return nil, err
	}
	return Compose(Viewport(pr.Width, pr.Height), ortho, persp)
}

// Pipeline returns the full Viewport · Orthographic · Perspective · Camera
// matrix taking world-space points to pixel coordinates plus depth.
func Pipeline(cam Camera, pr Projection) (*Mat4, error) {
	view, err := cam.Transform()
	if err != nil {
		return nil, err
	}
	proj, err := pr.Matrix()
	if err != nil {
		return nil, err
	}
	return proj.Multiply(view)
}
