package gg3d

import (
	"fmt"
	"math"

	"github.com/gogpu/gg3d/internal/parallel"
)

// maxScreenCoord bounds projected pixel coordinates. Faces reaching beyond
// it are skipped; they only occur for vertices almost on the eye plane.
const maxScreenCoord = 1 << 24

// Renderer draws a Model into a fresh Canvas. The mode and projection are
// fixed at construction; a Renderer may be reused for any number of passes.
type Renderer struct {
	width  int
	height int
	opts   options
}

// NewRenderer creates a renderer producing width×height images.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{width: width, height: height, opts: o}
}

// Mode returns the rendering mode.
func (r *Renderer) Mode() Mode {
	return r.opts.mode
}

// Stats counts what a pass did with each face.
type Stats struct {
	Faces   int // faces in the model
	Drawn   int // faces sent to the rasterizer
	Culled  int // back faces, filled mode only
	Skipped int // too few points, zero normal, behind the eye or out of range
}

func (s *Stats) add(o Stats) {
	s.Faces += o.Faces
	s.Drawn += o.Drawn
	s.Culled += o.Culled
	s.Skipped += o.Skipped
}

// Render draws model as seen from cam and returns the new canvas.
// mat is required in filled mode and ignored in wireframe mode.
func (r *Renderer) Render(model *Model, cam Camera, mat Material) (*Canvas, error) {
	c, _, err := r.RenderStats(model, cam, mat)
	return c, err
}

// RenderStats is Render that also reports per-face statistics. With stereo
// enabled the statistics cover both eyes.
func (r *Renderer) RenderStats(model *Model, cam Camera, mat Material) (*Canvas, Stats, error) {
	if r.opts.mode == ModeFilled && len(mat) == 0 {
		return nil, Stats{}, ErrEmptyMaterial
	}
	if !r.opts.stereo {
		c, err := NewCanvas(r.width, r.height)
		if err != nil {
			return nil, Stats{}, err
		}
		st, err := r.renderInto(c, model, cam, mat)
		if err != nil {
			return nil, Stats{}, err
		}
		return c, st, nil
	}

	leftCam, rightCam, err := cam.Eyes(r.opts.separation)
	if err != nil {
		return nil, Stats{}, err
	}
	var (
		total Stats
		eyes  [2]*Canvas
	)
	for i, eye := range [2]Camera{leftCam, rightCam} {
		c, err := NewCanvas(r.width, r.height)
		if err != nil {
			return nil, Stats{}, err
		}
		st, err := r.renderInto(c, model, eye, mat)
		if err != nil {
			return nil, Stats{}, err
		}
		total.add(st)
		eyes[i] = c
	}
	out, err := Composite(eyes[0], eyes[1])
	if err != nil {
		return nil, Stats{}, err
	}
	return out, total, nil
}

// primitive is a projected triangle or line ready for rasterization.
type primitive struct {
	v    [3]Vertex
	line bool
	col  Color
}

func (p *primitive) draw(c *Canvas) {
	if p.line {
		c.DrawLine(p.v[0].X, p.v[0].Y, p.v[1].X, p.v[1].Y, p.col)
		return
	}
	c.DrawTriangle(p.v[0], p.v[1], p.v[2], p.col)
}

// renderInto clears c and draws one mono pass into it.
func (r *Renderer) renderInto(c *Canvas, model *Model, cam Camera, mat Material) (Stats, error) {
	m, err := Pipeline(cam, Projection{
		Width:  c.Width(),
		Height: c.Height(),
		Scale:  r.opts.scale,
		Near:   r.opts.near,
		Far:    r.opts.far,
	})
	if err != nil {
		return Stats{}, fmt.Errorf("build pipeline: %w", err)
	}

	prims, st := r.project(model, cam, mat, m)

	c.Clear(r.opts.background)
	workers := r.rasterize(c, prims)

	attrs := []any{
		"mode", r.opts.mode,
		"faces", st.Faces,
		"drawn", st.Drawn,
		"culled", st.Culled,
		"skipped", st.Skipped,
		"primitives", len(prims),
		"workers", workers,
	}
	if b, ok := model.Bounds(); ok {
		attrs = append(attrs, "bounds", b)
	}
	Logger().Info("gg3d: render pass", attrs...)
	return st, nil
}

// project runs the per-face pipeline: cull and shade in world space, then
// transform and divide. Faces are handled in model order so material
// entries cycle by face index.
func (r *Renderer) project(model *Model, cam Camera, mat Material, m *Mat4) ([]primitive, Stats) {
	log := Logger()
	st := Stats{Faces: len(model.Faces)}
	dirLen := cam.Dir.Magnitude()

	var prims []primitive
	for i, f := range model.Faces {
		if len(f) < 3 {
			log.Warn("gg3d: face has fewer than three points", "face", i, "points", len(f))
			st.Skipped++
			continue
		}

		col := r.opts.wire
		if r.opts.mode == ModeFilled {
			n, ok := f.Normal()
			if !ok {
				log.Debug("gg3d: degenerate face skipped", "face", i)
				st.Skipped++
				continue
			}
			cos := -n.Dot(cam.Dir) / (n.Magnitude() * dirLen)
			if !(cos > 0) {
				log.Debug("gg3d: back face culled", "face", i, "cos", cos)
				st.Culled++
				continue
			}
			col = mat.At(i).Shade(cos)
		}

		verts, ok := projectFace(f, m)
		if !ok {
			log.Debug("gg3d: face behind eye or out of range", "face", i)
			st.Skipped++
			continue
		}

		if r.opts.mode == ModeWireframe {
			for j := range verts {
				k := (j + 1) % len(verts)
				prims = append(prims, primitive{v: [3]Vertex{verts[j], verts[k]}, line: true, col: col})
			}
		} else {
			for _, t := range f.Fan() {
				prims = append(prims, primitive{v: [3]Vertex{verts[t[0]], verts[t[1]], verts[t[2]]}, col: col})
			}
		}
		st.Drawn++
	}
	return prims, st
}

// projectFace transforms all vertices of f with one multiplication and
// rounds them to pixels. ok is false if any vertex is on or behind the eye
// plane or lands too far outside the canvas.
func projectFace(f Face, m *Mat4) ([]Vertex, bool) {
	hs, err := ApplyColumns(m, f.Matrix())
	if err != nil {
		return nil, false
	}
	verts := make([]Vertex, len(hs))
	for i, h := range hs {
		p, ok := h.Divide()
		if !ok || math.Abs(p.X) > maxScreenCoord || math.Abs(p.Y) > maxScreenCoord {
			return nil, false
		}
		verts[i] = Vertex{X: roundPixel(p.X), Y: roundPixel(p.Y), Z: p.Z}
	}
	return verts, true
}

// rasterize draws prims into c and returns the number of bands used. With
// more than one worker each band owns a disjoint set of rows and draws
// every primitive clipped to them, so no pixel has two writers.
func (r *Renderer) rasterize(c *Canvas, prims []primitive) int {
	bands := parallel.Bands(c.Width(), c.Height(), r.opts.workers)
	if len(bands) <= 1 {
		for i := range prims {
			prims[i].draw(c)
		}
		return 1
	}

	pool := parallel.NewWorkerPool(len(bands))
	defer pool.Close()

	work := make([]func(), len(bands))
	for i, b := range bands {
		band := c.SubCanvas(b)
		work[i] = func() {
			for j := range prims {
				prims[j].draw(band)
			}
		}
	}
	pool.ExecuteAll(work)
	return len(bands)
}

// Composite combines a stereo pair into a red/cyan anaglyph: red from left,
// green and blue from right.
func Composite(left, right *Canvas) (*Canvas, error) {
	if left.Width() != right.Width() || left.Height() != right.Height() {
		return nil, fmt.Errorf("%w: stereo pair %dx%d and %dx%d",
			ErrInvalidSize, left.Width(), left.Height(), right.Width(), right.Height())
	}
	out, err := NewCanvas(left.Width(), left.Height())
	if err != nil {
		return nil, err
	}
	for i := range out.pix {
		out.pix[i] = Color{R: left.pix[i].R, G: right.pix[i].G, B: right.pix[i].B}
		out.depth[i] = min(left.depth[i], right.depth[i])
	}
	return out, nil
}
