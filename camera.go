package gg3d

import (
	"errors"
	"fmt"
)

// ErrDegenerateCamera is returned when the camera basis cannot be built:
// a zero gaze, a zero up vector, or an up vector parallel to the gaze.
var ErrDegenerateCamera = errors.New("gg3d: degenerate camera")

// Camera positions the eye in world space.
type Camera struct {
	// Center is the eye position.
	Center Point3D
	// Dir is the gaze direction. It need not be unit length.
	Dir Point3D
	// Up approximates the viewer's up direction. It need not be unit length
	// or exactly perpendicular to Dir, but must not be parallel to it.
	Up Point3D
}

// DefaultCamera returns an eye at the origin looking down +z with +y up.
func DefaultCamera() Camera {
	return Camera{
		Center: P3(0, 0, 0),
		Dir:    P3(0, 0, 1),
		Up:     P3(0, 1, 0),
	}
}

// Basis returns the orthonormal camera frame: u points to the viewer's
// right, v to the viewer's up and w along the gaze.
//
//	w = normalize(Dir)
//	u = normalize(w × Up)
//	v = u × w
//
// Camera space is therefore x right, y up and z increasing away from the eye,
// so depth after the perspective divide grows with distance.
func (c Camera) Basis() (u, v, w Point3D, err error) {
	w, ok := c.Dir.Normalize()
	if !ok {
		return u, v, w, fmt.Errorf("%w: zero gaze direction %v", ErrDegenerateCamera, c.Dir)
	}
	u, ok = w.Cross(c.Up).Normalize()
	if !ok {
		return u, v, w, fmt.Errorf("%w: up %v is zero or parallel to gaze %v", ErrDegenerateCamera, c.Up, c.Dir)
	}
	v = u.Cross(w)
	return u, v, w, nil
}

// Transform returns Rotation(u, v, w) · Translate(-Center), which maps the
// eye to the origin of camera space.
func (c Camera) Transform() (*Mat4, error) {
	u, v, w, err := c.Basis()
	if err != nil {
		return nil, err
	}
	return Rotation(u, v, w).Multiply(Translate(-c.Center.X, -c.Center.Y, -c.Center.Z))
}

// Eyes returns the left and right cameras of a stereo pair separated by
// separation world units along the viewer's right axis. Both eyes keep the
// gaze and up vectors of c.
func (c Camera) Eyes(separation float64) (left, right Camera, err error) {
	u, _, _, err := c.Basis()
	if err != nil {
		return left, right, err
	}
	offset := u.Scale(separation / 2)
	left, right = c, c
	left.Center = c.Center.Sub(offset)
	right.Center = c.Center.Add(offset)
	return left, right, nil
}
