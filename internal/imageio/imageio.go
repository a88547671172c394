// Package imageio writes rendered images to disk.
//
// The format is chosen from the output file extension: .ppm (binary P6,
// the default for the gg3d tools), .png, .bmp and .tif/.tiff.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

var (
	// ErrUnsupportedFormat is returned when the output extension is unknown.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrTooLarge is returned when a zoomed image would exceed MaxPixels.
	ErrTooLarge = errors.New("imageio: image too large")
)

// MaxPixels bounds the pixel count of an image produced by Zoom.
const MaxPixels = 1 << 28

// Format identifies an output encoding.
type Format int

const (
	PPM Format = iota
	PNG
	BMP
	TIFF
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case PPM:
		return "ppm"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the encoding for path from its extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PPM:
		err = EncodePPM(w, img)
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", f, err)
	}
	return nil
}

// EncodePPM writes img as a binary PPM (P6) with maxval 255, top row first.
// Alpha is dropped.
func EncodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	row := make([]byte, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if rgba, ok := img.(*image.RGBA); ok {
			off := rgba.PixOffset(b.Min.X, y)
			for x := range b.Dx() {
				copy(row[3*x:3*x+3], rgba.Pix[off+4*x:off+4*x+3])
			}
		} else {
			for x := range b.Dx() {
				r, g, bl, _ := img.At(b.Min.X+x, y).RGBA()
				row[3*x] = byte(r >> 8)
				row[3*x+1] = byte(g >> 8)
				row[3*x+2] = byte(bl >> 8)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile encodes img into path, choosing the format from the extension.
// The image is written to a temporary file in the same directory and renamed
// into place, so path never holds a partial image.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".gg3d-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	name := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(name)
	}()

	if err := Encode(tmp, img, f); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("imageio: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("imageio: rename: %w", err)
	}
	return nil
}

// CheckZoom reports ErrTooLarge when a width×height image zoomed by k
// would hold more than MaxPixels pixels.
func CheckZoom(width, height, k int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width > MaxPixels/height {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	if k <= 1 {
		return nil
	}
	// k*k <= q without overflowing.
	if q := MaxPixels / (width * height); k > q/k {
		return fmt.Errorf("%w: %dx%d zoomed %d times", ErrTooLarge, width, height, k)
	}
	return nil
}

// Zoom scales img up by an integer factor k with nearest-neighbour sampling.
// For k <= 1 the image is returned unchanged.
func Zoom(img image.Image, k int) (image.Image, error) {
	if k <= 1 {
		return img, nil
	}
	b := img.Bounds()
	if err := CheckZoom(b.Dx(), b.Dy(), k); err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*k, b.Dy()*k))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}
