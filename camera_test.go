package gg3d

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestCamera_TransformMapsEyeToOrigin(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		cam := Camera{Center: randomPoint(rng), Dir: randomPoint(rng), Up: randomPoint(rng)}
		m, err := cam.Transform()
		if err != nil {
			continue
		}
		got, ok := Apply(m, cam.Center).Divide()
		if !ok || !got.Approx(P3(0, 0, 0), 1e-9) {
			t.Fatalf("camera %+v maps its eye to %v, want origin", cam, got)
		}
	}
}

func TestCamera_TransformAxes(t *testing.T) {
	cam := Camera{Center: P3(1, 2, 3), Dir: P3(0, 0, -2), Up: P3(0, 5, 0)}
	m, err := cam.Transform()
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	tests := []struct {
		name string
		in   Point3D
		want Point3D
	}{
		{"ahead", P3(1, 2, 0), P3(0, 0, 3)},
		{"above", P3(1, 4, 3), P3(0, 2, 0)},
		// Looking down -z with +y up, the viewer's right is +x.
		{"right", P3(2, 2, 3), P3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Apply(m, tt.in).Divide()
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("Transform applied to %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCamera_BasisOrthonormal(t *testing.T) {
	cam := Camera{Dir: P3(1, 2, 3), Up: P3(0, 1, 0.2)}
	u, v, w, err := cam.Basis()
	if err != nil {
		t.Fatalf("Basis() error = %v", err)
	}
	for name, x := range map[string]float64{
		"|u|": u.Magnitude(), "|v|": v.Magnitude(), "|w|": w.Magnitude(),
	} {
		if math.Abs(x-1) > 1e-12 {
			t.Errorf("%s = %v, want 1", name, x)
		}
	}
	for name, x := range map[string]float64{
		"u·v": u.Dot(v), "u·w": u.Dot(w), "v·w": v.Dot(w),
	} {
		if math.Abs(x) > 1e-12 {
			t.Errorf("%s = %v, want 0", name, x)
		}
	}
	if v.Dot(cam.Up) <= 0 {
		t.Errorf("v = %v points away from up %v", v, cam.Up)
	}
}

func TestCamera_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
	}{
		{"zero gaze", Camera{Dir: P3(0, 0, 0), Up: P3(0, 1, 0)}},
		{"zero up", Camera{Dir: P3(0, 0, 1), Up: P3(0, 0, 0)}},
		{"parallel up", Camera{Dir: P3(0, 2, 0), Up: P3(0, 1, 0)}},
		{"antiparallel up", Camera{Dir: P3(0, 2, 0), Up: P3(0, -1, 0)}},
		{"nan gaze", Camera{Dir: P3(math.NaN(), 0, 1), Up: P3(0, 1, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cam.Transform(); !errors.Is(err, ErrDegenerateCamera) {
				t.Errorf("Transform() error = %v, want ErrDegenerateCamera", err)
			}
		})
	}
}

func TestCamera_Eyes(t *testing.T) {
	cam := DefaultCamera()
	left, right, err := cam.Eyes(0.2)
	if err != nil {
		t.Fatalf("Eyes() error = %v", err)
	}
	// Looking down +z with +y up, the viewer's right is -x.
	if !left.Center.Approx(P3(0.1, 0, 0), 1e-12) || !right.Center.Approx(P3(-0.1, 0, 0), 1e-12) {
		t.Errorf("Eyes(0.2) centers = %v, %v, want (0.1,0,0), (-0.1,0,0)", left.Center, right.Center)
	}
	if left.Dir != cam.Dir || right.Up != cam.Up {
		t.Error("Eyes() changed the gaze or up vector")
	}
}
