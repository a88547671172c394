package gg3d

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrInvalidSize is returned for canvas or projection dimensions that are
// not positive, or too large to allocate.
var ErrInvalidSize = errors.New("gg3d: invalid canvas size")

// maxPixels bounds width*height so the buffers stay addressable.
const maxPixels = 1 << 28

// Canvas is a width×height color buffer with a parallel depth buffer.
//
// Coordinates are in pixels with (0, 0) at the bottom-left corner and y
// growing upward. Depth starts at +Inf, meaning nothing has been drawn.
//
// A Canvas returned by SubCanvas shares storage with its parent but only
// accepts writes inside its clip rectangle. Canvases that share storage may
// be written concurrently as long as their clip rectangles do not overlap.
type Canvas struct {
	width  int
	height int
	pix    []Color   // row-major, index y*width + x
	depth  []float64 // parallel to pix
	clip   image.Rectangle
}

// NewCanvas creates a canvas filled with black and an empty depth buffer.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 || width > maxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
		depth:  make([]float64, width*height),
		clip:   image.Rect(0, 0, width, height),
	}
	c.ResetDepth()
	return c, nil
}

// Width returns the width of the underlying buffer.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the underlying buffer.
func (c *Canvas) Height() int {
	return c.height
}

// Clip returns the rectangle that accepts writes.
func (c *Canvas) Clip() image.Rectangle {
	return c.clip
}

// SubCanvas returns a view of c that shares its storage and coordinate
// system but only accepts writes inside r ∩ c.Clip().
func (c *Canvas) SubCanvas(r image.Rectangle) *Canvas {
	sub := *c
	sub.clip = r.Intersect(c.clip)
	return &sub
}

// Clear fills the clip rectangle with bg and resets its depth to +Inf.
func (c *Canvas) Clear(bg Color) {
	inf := math.Inf(1)
	for y := c.clip.Min.Y; y < c.clip.Max.Y; y++ {
		row := y * c.width
		for x := c.clip.Min.X; x < c.clip.Max.X; x++ {
			c.pix[row+x] = bg
			c.depth[row+x] = inf
		}
	}
}

// ResetDepth sets the depth of every pixel in the clip rectangle to +Inf.
func (c *Canvas) ResetDepth() {
	inf := math.Inf(1)
	for y := c.clip.Min.Y; y < c.clip.Max.Y; y++ {
		row := y * c.width
		for x := c.clip.Min.X; x < c.clip.Max.X; x++ {
			c.depth[row+x] = inf
		}
	}
}

func (c *Canvas) inClip(x, y int) bool {
	return x >= c.clip.Min.X && x < c.clip.Max.X && y >= c.clip.Min.Y && y < c.clip.Max.Y
}

// Pixel returns the color at (x, y), or Black outside the buffer.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Black
	}
	return c.pix[y*c.width+x]
}

// Depth returns the stored depth at (x, y), or +Inf outside the buffer.
func (c *Canvas) Depth(x, y int) float64 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return math.Inf(1)
	}
	return c.depth[y*c.width+x]
}

// SetPixel writes col at (x, y) without a depth test. Writes outside the
// clip rectangle are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.inClip(x, y) {
		return
	}
	c.pix[y*c.width+x] = col
}

// SetPixelDepth writes col at (x, y) if z is non-negative and strictly
// nearer than the stored depth, and reports whether it did. Writes outside
// the clip rectangle are ignored.
func (c *Canvas) SetPixelDepth(x, y int, z float64, col Color) bool {
	if !c.inClip(x, y) || !(z >= 0) {
		return false
	}
	i := y*c.width + x
	if !(z < c.depth[i]) {
		return false
	}
	c.depth[i] = z
	c.pix[i] = col
	return true
}

// ToImage copies the canvas into an image.RGBA. Rows are flipped so the
// image's first row is the canvas's top row.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		src := c.pix[(c.height-1-y)*c.width : (c.height-y)*c.width]
		dst := img.Pix[y*img.Stride : y*img.Stride+4*c.width]
		for x, p := range src {
			dst[4*x+0] = p.R
			dst[4*x+1] = p.G
			dst[4*x+2] = p.B
			dst[4*x+3] = 0xff
		}
	}
	return img
}

// At implements the image.Image interface in top-down orientation: image
// row 0 is the canvas's top row.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, c.height-1-y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}
