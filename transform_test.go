package gg3d

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestViewportOrthographicIdentity(t *testing.T) {
	for _, size := range []struct{ w, h int }{{10, 10}, {640, 480}, {1920, 1080}} {
		b := ViewportBox(size.w, size.h)
		ortho, err := Orthographic(b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z)
		if err != nil {
			t.Fatalf("Orthographic() error = %v", err)
		}
		m := mustMultiply(Viewport(size.w, size.h), ortho)
		if !matrixNear(m, Identity[float64](4), 1e-9) {
			t.Errorf("%dx%d: Viewport·Orthographic = %v, want identity", size.w, size.h, m)
		}

		rng := rand.New(rand.NewSource(int64(size.w)))
		for i := 0; i < 20; i++ {
			p := P3(rng.Float64()*float64(size.w), rng.Float64()*float64(size.h), rng.Float64())
			got, ok := Apply(m, p).Divide()
			if !ok || math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("%dx%d: round trip of %v = %v", size.w, size.h, p, got)
			}
		}
	}
}

func TestWindowing(t *testing.T) {
	src := Box{Min: P3(0, 0, 0), Max: P3(2, 4, 8)}
	dst := Box{Min: P3(-1, -1, -1), Max: P3(1, 1, 1)}
	m, err := Windowing(src, dst)
	if err != nil {
		t.Fatalf("Windowing() error = %v", err)
	}
	tests := []struct {
		in, want Point3D
	}{
		{src.Min, dst.Min},
		{src.Max, dst.Max},
		{P3(1, 2, 4), P3(0, 0, 0)},
	}
	for _, tt := range tests {
		got, _ := Apply(m, tt.in).Divide()
		if !got.Approx(tt.want, 1e-12) {
			t.Errorf("Windowing applied to %v = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Windowing(Box{Min: P3(0, 0, 0), Max: P3(1, 0, 1)}, dst); !errors.Is(err, ErrInvalidProjection) {
		t.Errorf("Windowing(empty box) error = %v, want ErrInvalidProjection", err)
	}
}

func TestPerspective(t *testing.T) {
	m, err := Perspective(1, 10)
	if err != nil {
		t.Fatalf("Perspective() error = %v", err)
	}
	tests := []struct {
		name string
		in   Point3D
		want Point3D
	}{
		{"near plane keeps depth", P3(2, 3, 1), P3(2, 3, 1)},
		{"far plane keeps depth", P3(20, 30, 10), P3(2, 3, 10)},
		{"x and y scale by n/z", P3(4, -8, 4), P3(1, -2, 8.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Apply(m, tt.in).Divide()
			if !ok || !got.Approx(tt.want, 1e-12) {
				t.Errorf("Perspective applied to %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPerspectiveInvalid(t *testing.T) {
	tests := []struct {
		name string
		n, f float64
	}{
		{"zero near", 0, 10},
		{"negative near", -2, 2},
		{"far before near", 5, 1},
		{"equal", 3, 3},
		{"infinite far", 1, math.Inf(1)},
		{"nan", math.NaN(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Perspective(tt.n, tt.f); !errors.Is(err, ErrInvalidProjection) {
				t.Errorf("Perspective(%v, %v) error = %v, want ErrInvalidProjection", tt.n, tt.f, err)
			}
		})
	}
}

func TestHomogeneousDivide(t *testing.T) {
	tests := []struct {
		name   string
		h      Homogeneous
		wantOK bool
	}{
		{"positive w", Homogeneous{2, 4, 6, 2}, true},
		{"zero w", Homogeneous{1, 1, 1, 0}, false},
		{"negative w", Homogeneous{1, 1, 1, -1}, false},
		{"nan w", Homogeneous{1, 1, 1, math.NaN()}, false},
		{"overflow", Homogeneous{math.MaxFloat64, 0, 0, 1e-10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.h.Divide(); ok != tt.wantOK {
				t.Errorf("Divide() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestApplyColumnsMatchesApply(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := randomMatrix(rng, 4, 4)
	f := Face{P3(1, 2, 3), P3(-4, 0.5, 2), P3(0, 0, 9), P3(7, -1, 1)}

	got, err := ApplyColumns(m, f.Matrix())
	if err != nil {
		t.Fatalf("ApplyColumns() error = %v", err)
	}
	for i, p := range f {
		want := Apply(m, p)
		g := got[i]
		if math.Abs(g.X-want.X) > 1e-12 || math.Abs(g.Y-want.Y) > 1e-12 ||
			math.Abs(g.Z-want.Z) > 1e-12 || math.Abs(g.W-want.W) > 1e-12 {
			t.Errorf("column %d = %v, want %v", i, g, want)
		}
	}

	if _, err := ApplyColumns(m, NewMatrix[float64](3, 2)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ApplyColumns(3xN) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestProjectionCentersGaze(t *testing.T) {
	pr := Projection{Width: 101, Height: 51, Scale: 20, Near: 0.5, Far: 50}
	m, err := pr.Matrix()
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	tests := []struct {
		name string
		in   Point3D
		want Point3D
	}{
		{"on axis", P3(0, 0, 5), P3(50, 25, 0)},
		{"right", P3(1, 0, 2), P3(60, 25, 0)},
		{"up", P3(0, -1, 4), P3(50, 20, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Apply(m, tt.in).Divide()
			if !ok || math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("projected %v = %v, want pixel (%v, %v)", tt.in, got, tt.want.X, tt.want.Y)
			}
		})
	}

	near, _ := Apply(m, P3(0, 0, pr.Near)).Divide()
	far, _ := Apply(m, P3(0, 0, pr.Far)).Divide()
	if math.Abs(near.Z) > 1e-9 || math.Abs(far.Z-1) > 1e-9 {
		t.Errorf("depth at near, far = %v, %v, want 0, 1", near.Z, far.Z)
	}
}

func TestProjectionInvalid(t *testing.T) {
	tests := []struct {
		name    string
		pr      Projection
		wantErr error
	}{
		{"zero width", Projection{Width: 0, Height: 10, Scale: 1, Near: 1, Far: 2}, ErrInvalidSize},
		{"zero scale", Projection{Width: 10, Height: 10, Scale: 0, Near: 1, Far: 2}, ErrInvalidProjection},
		{"bad depth", Projection{Width: 10, Height: 10, Scale: 1, Near: 2, Far: 1}, ErrInvalidProjection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.pr.Matrix(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Matrix() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
