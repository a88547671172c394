// Package caption stamps a short line of text onto a rendered canvas using a
// small bitmap font.
package caption

import (
	"image/color"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/gogpu/gg3d"
)

// Margin is the gap in pixels between the caption and the top-left corner.
const Margin = 2

var font = &tinyfont.TomThumb

// canvasDisplay adapts a canvas to drivers.Displayer. Displayer rows grow
// downward, canvas rows grow upward.
type canvasDisplay struct {
	c *gg3d.Canvas
}

var _ drivers.Displayer = (*canvasDisplay)(nil)

func (d *canvasDisplay) Size() (x, y int16) {
	return int16(min(d.c.Width(), 1<<15-1)), int16(min(d.c.Height(), 1<<15-1))
}

func (d *canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	// Out-of-range writes are dropped by the canvas clip.
	d.c.SetPixel(int(x), d.c.Height()-1-int(y), gg3d.Color{R: c.R, G: c.G, B: c.B})
}

func (d *canvasDisplay) Display() error { return nil }

func (d *canvasDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// Fold reduces s to printable ASCII: accents are stripped, other non-ASCII
// runes and control characters become '?'.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '?'
		}
		return r
	}, folded)
}

// Width returns the width in pixels of text once folded.
func Width(text string) int {
	_, w := tinyfont.LineWidth(font, Fold(text))
	return int(w)
}

// Draw writes text in col along the top-left edge of c.
func Draw(c *gg3d.Canvas, text string, col gg3d.Color) {
	text = Fold(text)
	if text == "" {
		return
	}
	d := &canvasDisplay{c: c}
	baseline := int16(Margin) + int16(font.YAdvance)
	tinyfont.WriteLine(d, font, Margin, baseline, text, color.RGBA{R: col.R, G: col.G, B: col.B, A: 0xff})
}
