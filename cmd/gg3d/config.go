package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/internal/imageio"
)

// config is the parsed command line.
type config struct {
	width, height int
	scale         float64
	wireframe     bool
	stereo        bool
	separation    float64
	output        string
	workers       int
	label         string
	zoom          int
	verbose       bool

	// base is the scene name; files are base+".raw", ".camera", ".material".
	base string

	// Camera overrides from c/d/u triples; nil keeps the camera file value.
	center, dir, up *gg3d.Point3D
}

func defaultConfig() config {
	return config{
		width:      1920,
		height:     1080,
		scale:      gg3d.DefaultScale,
		separation: 0.2,
		output:     "out.ppm",
		zoom:       1,
		base:       "in",
	}
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("gg3d", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&cfg.width, "w", cfg.width, "image width in pixels")
	fs.IntVar(&cfg.width, "width", cfg.width, "image width in pixels")
	fs.IntVar(&cfg.height, "h", cfg.height, "image height in pixels")
	fs.IntVar(&cfg.height, "height", cfg.height, "image height in pixels")
	fs.Float64Var(&cfg.scale, "s", cfg.scale, "projection scale factor")
	fs.Float64Var(&cfg.scale, "scale", cfg.scale, "projection scale factor")
	fs.BoolVar(&cfg.wireframe, "W", cfg.wireframe, "draw polygon edges only")
	fs.BoolVar(&cfg.wireframe, "wireframe", cfg.wireframe, "draw polygon edges only")
	fs.BoolVar(&cfg.stereo, "a", cfg.stereo, "render a red/cyan anaglyph")
	fs.Float64Var(&cfg.separation, "sep", cfg.separation, "eye separation for -a")
	fs.StringVar(&cfg.output, "o", cfg.output, "output image (.ppm, .png, .bmp, .tiff)")
	fs.IntVar(&cfg.workers, "workers", cfg.workers, "rasterizer bands (0 = one per CPU)")
	fs.StringVar(&cfg.label, "label", cfg.label, "caption stamped in the top-left corner")
	fs.IntVar(&cfg.zoom, "zoom", cfg.zoom, "integer upscale of the output image")
	fs.BoolVar(&cfg.verbose, "v", cfg.verbose, "log per-face decisions")
	return fs
}

// printUsage writes the flag reference to w.
func printUsage(w io.Writer) {
	cfg := defaultConfig()
	fs := newFlagSet(&cfg)
	fs.SetOutput(w)
	_, _ = fmt.Fprintln(w, "usage: gg3d [flags] [base] [c x y z] [d x y z] [u x y z]")
	fs.PrintDefaults()
}

// parseConfig parses args. Flags, the base name and camera triples may be
// given in any order.
func parseConfig(args []string) (config, error) {
	cfg := defaultConfig()
	fs := newFlagSet(&cfg)

	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return config{}, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		tok := rest[0]
		rest = rest[1:]
		switch tok {
		case "c", "d", "u":
			if len(rest) < 3 {
				return config{}, fmt.Errorf("%s needs three numbers", tok)
			}
			p, err := parseTriple(rest[:3])
			if err != nil {
				return config{}, fmt.Errorf("%s: %w", tok, err)
			}
			rest = rest[3:]
			switch tok {
			case "c":
				cfg.center = &p
			case "d":
				cfg.dir = &p
			default:
				cfg.up = &p
			}
		default:
			cfg.base = tok
		}
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func parseTriple(s []string) (gg3d.Point3D, error) {
	var v [3]float64
	for i, tok := range s {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return gg3d.Point3D{}, fmt.Errorf("%q is not a number", tok)
		}
		v[i] = f
	}
	p := gg3d.P3(v[0], v[1], v[2])
	if !p.IsFinite() {
		return gg3d.Point3D{}, errors.New("coordinates must be finite")
	}
	return p, nil
}

func (c config) validate() error {
	switch {
	case c.width <= 0 || c.height <= 0:
		return fmt.Errorf("invalid image size %dx%d", c.width, c.height)
	case !(c.scale > 0):
		return fmt.Errorf("invalid scale %v", c.scale)
	case c.workers < 0:
		return fmt.Errorf("invalid worker count %d", c.workers)
	case math.IsNaN(c.separation) || math.IsInf(c.separation, 0):
		return fmt.Errorf("invalid eye separation %v", c.separation)
	case c.zoom < 1:
		return fmt.Errorf("invalid zoom %d", c.zoom)
	case c.output == "":
		return errors.New("empty output path")
	}
	return imageio.CheckZoom(c.width, c.height, c.zoom)
}

// camera applies the command-line overrides to cam.
func (c config) camera(cam gg3d.Camera) gg3d.Camera {
	if c.center != nil {
		cam.Center = *c.center
	}
	if c.dir != nil {
		cam.Dir = *c.dir
	}
	if c.up != nil {
		cam.Up = *c.up
	}
	return cam
}
