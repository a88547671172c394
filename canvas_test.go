package gg3d

import (
	"errors"
	"image"
	"math"
	"math/rand"
	"testing"
)

// Verify at compile time that Canvas implements image.Image.
var _ image.Image = (*Canvas)(nil)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas(%d, %d) error = %v", w, h, err)
	}
	return c
}

func TestNewCanvas(t *testing.T) {
	c := newTestCanvas(t, 4, 3)
	if c.Width() != 4 || c.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", c.Width(), c.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c.Pixel(x, y) != Black {
				t.Errorf("Pixel(%d, %d) = %v, want black", x, y, c.Pixel(x, y))
			}
			if !math.IsInf(c.Depth(x, y), 1) {
				t.Errorf("Depth(%d, %d) = %v, want +Inf", x, y, c.Depth(x, y))
			}
		}
	}
}

func TestNewCanvasInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 5},
		{"too large", 1 << 20, 1 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCanvas(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("NewCanvas(%d, %d) error = %v, want ErrInvalidSize", tt.w, tt.h, err)
			}
			if c != nil {
				t.Error("NewCanvas() returned a canvas with an error")
			}
		})
	}
}

func TestCanvasSetPixelOutOfBounds(t *testing.T) {
	c := newTestCanvas(t, 5, 5)
	for _, p := range []struct{ x, y int }{{-1, 2}, {5, 2}, {2, -1}, {2, 5}, {-100, 100}} {
		c.SetPixel(p.x, p.y, White)
		if c.SetPixelDepth(p.x, p.y, 0.5, White) {
			t.Errorf("SetPixelDepth(%d, %d) = true, want false", p.x, p.y)
		}
	}
	for i, p := range c.pix {
		if p != Black {
			t.Fatalf("out-of-bounds write modified pixel %d", i)
		}
	}
}

func TestCanvasSetPixelDepth(t *testing.T) {
	c := newTestCanvas(t, 2, 2)
	red := Color{R: 255}
	green := Color{G: 255}

	tests := []struct {
		name  string
		z     float64
		col   Color
		wrote bool
		want  Color
	}{
		{"first write", 0.5, red, true, red},
		{"farther rejected", 0.7, green, false, red},
		{"equal rejected", 0.5, green, false, red},
		{"negative rejected", -0.1, green, false, red},
		{"nan rejected", math.NaN(), green, false, red},
		{"nearer accepted", 0.2, green, true, green},
		{"zero accepted", 0, red, true, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SetPixelDepth(1, 1, tt.z, tt.col); got != tt.wrote {
				t.Errorf("SetPixelDepth(z=%v) = %v, want %v", tt.z, got, tt.wrote)
			}
			if got := c.Pixel(1, 1); got != tt.want {
				t.Errorf("Pixel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvasDepthIsMinimumNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 50; trial++ {
		c := newTestCanvas(t, 1, 1)
		want := math.Inf(1)
		for i := 0; i < 20; i++ {
			z := rng.Float64()*4 - 1
			c.SetPixelDepth(0, 0, z, White)
			if z >= 0 && z < want {
				want = z
			}
		}
		if got := c.Depth(0, 0); got != want {
			t.Fatalf("trial %d: Depth() = %v, want %v", trial, got, want)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := newTestCanvas(t, 3, 3)
	c.SetPixelDepth(1, 1, 0.3, White)
	gray := Color{R: 9, G: 9, B: 9}
	c.Clear(gray)
	if c.Pixel(1, 1) != gray {
		t.Errorf("Pixel(1, 1) = %v, want %v", c.Pixel(1, 1), gray)
	}
	if !math.IsInf(c.Depth(1, 1), 1) {
		t.Errorf("Depth(1, 1) = %v, want +Inf", c.Depth(1, 1))
	}
}

func TestCanvasSubCanvas(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	band := c.SubCanvas(image.Rect(0, 2, 4, 4))

	band.SetPixel(1, 1, White)
	band.SetPixel(1, 2, White)
	if c.Pixel(1, 1) != Black {
		t.Error("SubCanvas wrote outside its clip rectangle")
	}
	if c.Pixel(1, 2) != White {
		t.Error("SubCanvas write inside its clip rectangle not visible in parent")
	}

	inner := band.SubCanvas(image.Rect(-10, -10, 100, 3))
	if want := image.Rect(0, 2, 4, 3); inner.Clip() != want {
		t.Errorf("nested Clip() = %v, want %v", inner.Clip(), want)
	}
}

func TestCanvasToImageFlipsRows(t *testing.T) {
	c := newTestCanvas(t, 3, 2)
	red := Color{R: 255}
	c.SetPixel(0, 0, red) // bottom-left

	img := c.ToImage()
	if got := FromColor(img.At(0, 1)); got != red {
		t.Errorf("image bottom-left = %v, want %v", got, red)
	}
	if got := FromColor(img.At(0, 0)); got != Black {
		t.Errorf("image top-left = %v, want black", got)
	}
	if got := FromColor(c.At(0, 1)); got != red {
		t.Errorf("Canvas.At(0, 1) = %v, want %v", got, red)
	}
	if img.Pix[3] != 0xff {
		t.Errorf("alpha = %d, want 255", img.Pix[3])
	}
}
