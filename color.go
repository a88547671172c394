package gg3d

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrEmptyMaterial is returned when a filled render is requested with a
// material that has no entries.
var ErrEmptyMaterial = errors.New("gg3d: material has no entries")

// Color is an opaque 8-bit RGB color, the pixel type of a Canvas.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// RGBA implements color.Color. The alpha channel is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor converts a standard color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// MaterialEntry is one line of a material file.
type MaterialEntry struct {
	// R, G and B are the base color in 0..255.
	R, G, B float64
	// Intensity scales all three channels.
	Intensity float64
	// Shininess is the exponent applied to the cosine of the view angle.
	Shininess float64
}

// Material is the ordered list of entries assigned to faces round-robin:
// face i uses entry i mod len(m).
type Material []MaterialEntry

// At returns the entry used by face i. It panics on an empty material.
func (m Material) At(i int) MaterialEntry {
	return m[i%len(m)]
}

// MinIntensity is the ambient floor applied to every lit face, so faces seen
// edge-on are dim but not black.
const MinIntensity = 0.05

// Shade returns the color of a face whose normal makes angle θ with the
// view direction:
//
//	k = max(cosθ^Shininess, MinIntensity)
//	channel = clamp(base · k · Intensity, 0, 255)
func (e MaterialEntry) Shade(cosTheta float64) Color {
	k := math.Pow(max(cosTheta, 0), e.Shininess)
	if !(k >= MinIntensity) {
		k = MinIntensity
	}
	f := k * e.Intensity
	return Color{
		R: uint8(clamp255(e.R * f)),
		G: uint8(clamp255(e.G * f)),
		B: uint8(clamp255(e.B * f)),
	}
}

// clamp255 restricts a value to [0, 255] range. NaN maps to 0.
func clamp255(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
