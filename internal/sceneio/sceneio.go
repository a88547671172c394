// Package sceneio reads the plain-text scene files used by the gg3d tools.
//
// All formats are whitespace-separated decimal numbers:
//
//	.raw       one face per line, each face a run of x y z triples
//	.camera    center, dir and up: nine numbers
//	.material  r g b intensity shininess, repeated; entries cycle over faces
//	.curve     p1.x p1.y p2.x p2.y c1.x c1.y c2.x c2.y
//
// Every parse error wraps ErrMalformed and names the file and line.
package sceneio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg3d"
)

// ErrMalformed is returned for input that is not a valid scene file.
var ErrMalformed = errors.New("sceneio: malformed input")

// File name suffixes appended to a scene's base name.
const (
	ModelExt    = ".raw"
	CameraExt   = ".camera"
	MaterialExt = ".material"
	CurveExt    = ".curve"
)

// lines calls fn with the parsed numbers of every line of r, numbering lines
// from 1. Blank lines are passed as empty slices.
func lines(r io.Reader, name string, fn func(line int, vals []float64) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64<<20)
	n := 0
	for sc.Scan() {
		n++
		fields := strings.Fields(sc.Text())
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s:%d: %q is not a finite number", ErrMalformed, name, n, f)
			}
			vals[i] = v
		}
		if err := fn(n, vals); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// numbers returns every number in r, in order.
func numbers(r io.Reader, name string) ([]float64, error) {
	var all []float64
	err := lines(r, name, func(_ int, vals []float64) error {
		all = append(all, vals...)
		return nil
	})
	return all, err
}

// ReadModel parses a .raw model: each non-blank line is one face made of
// the x y z triples on it.
func ReadModel(r io.Reader, name string) (*gg3d.Model, error) {
	m := &gg3d.Model{}
	err := lines(r, name, func(line int, vals []float64) error {
		if len(vals) == 0 {
			return nil
		}
		if len(vals)%3 != 0 {
			return fmt.Errorf("%w: %s:%d: %d coordinates is not a whole number of points",
				ErrMalformed, name, line, len(vals))
		}
		face := make(gg3d.Face, 0, len(vals)/3)
		for i := 0; i < len(vals); i += 3 {
			face = append(face, gg3d.P3(vals[i], vals[i+1], vals[i+2]))
		}
		m.Faces = append(m.Faces, face)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ReadCamera parses a .camera file: center, dir and up, three numbers each.
func ReadCamera(r io.Reader, name string) (gg3d.Camera, error) {
	v, err := numbers(r, name)
	if err != nil {
		return gg3d.Camera{}, err
	}
	if len(v) != 9 {
		return gg3d.Camera{}, fmt.Errorf("%w: %s: want 9 numbers, got %d", ErrMalformed, name, len(v))
	}
	return gg3d.Camera{
		Center: gg3d.P3(v[0], v[1], v[2]),
		Dir:    gg3d.P3(v[3], v[4], v[5]),
		Up:     gg3d.P3(v[6], v[7], v[8]),
	}, nil
}

// ReadMaterial parses a .material file: records of r g b intensity
// shininess. Records may span or share lines.
func ReadMaterial(r io.Reader, name string) (gg3d.Material, error) {
	v, err := numbers(r, name)
	if err != nil {
		return nil, err
	}
	if len(v)%5 != 0 {
		return nil, fmt.Errorf("%w: %s: %d numbers is not a whole number of r g b intensity shininess records",
			ErrMalformed, name, len(v))
	}
	mat := make(gg3d.Material, 0, len(v)/5)
	for i := 0; i < len(v); i += 5 {
		mat = append(mat, gg3d.MaterialEntry{
			R: v[i], G: v[i+1], B: v[i+2],
			Intensity: v[i+3],
			Shininess: v[i+4],
		})
	}
	return mat, nil
}

// ReadCurve parses a .curve file into a curve of the given kind.
func ReadCurve(r io.Reader, name string, kind gg3d.CurveKind) (gg3d.Curve, error) {
	v, err := numbers(r, name)
	if err != nil {
		return gg3d.Curve{}, err
	}
	if len(v) != 8 {
		return gg3d.Curve{}, fmt.Errorf("%w: %s: want 8 numbers, got %d", ErrMalformed, name, len(v))
	}
	return gg3d.Curve{
		Kind: kind,
		P1:   gg3d.Pt(v[0], v[1]),
		P2:   gg3d.Pt(v[2], v[3]),
		C1:   gg3d.Pt(v[4], v[5]),
		C2:   gg3d.Pt(v[6], v[7]),
	}, nil
}

// load opens path and hands it to read.
func load[T any](path string, read func(io.Reader, string) (T, error)) (T, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		var zero T
		return zero, err
	}
	defer func() {
		_ = f.Close()
	}()
	return read(f, path)
}

// LoadModel reads a .raw model file.
func LoadModel(path string) (*gg3d.Model, error) {
	return load(path, ReadModel)
}

// LoadCamera reads a .camera file. A missing file is reported with an error
// matching fs.ErrNotExist.
func LoadCamera(path string) (gg3d.Camera, error) {
	return load(path, ReadCamera)
}

// LoadMaterial reads a .material file.
func LoadMaterial(path string) (gg3d.Material, error) {
	return load(path, ReadMaterial)
}

// LoadCurve reads a .curve file.
func LoadCurve(path string, kind gg3d.CurveKind) (gg3d.Curve, error) {
	return load(path, func(r io.Reader, name string) (gg3d.Curve, error) {
		return ReadCurve(r, name, kind)
	})
}
