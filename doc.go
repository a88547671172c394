// Package gg3d is a small software 3D renderer for batch image generation.
//
// # Overview
//
// gg3d reads nothing and writes nothing: it takes a Model (a list of
// polygonal faces), a Camera and a Material, runs every vertex through a
// Viewport · Orthographic · Perspective · Camera matrix and rasterizes the
// result into a Canvas with a depth buffer. File formats live in the
// internal/sceneio and internal/imageio packages and the cmd/gg3d tool.
//
// # Quick Start
//
//	model := &gg3d.Model{Faces: []gg3d.Face{
//		{gg3d.P3(1, -1, 4), gg3d.P3(-1, -1, 4), gg3d.P3(0, 1, 4)},
//	}}
//	mat := gg3d.Material{{R: 255, G: 200, B: 120, Intensity: 1, Shininess: 2}}
//
//	r := gg3d.NewRenderer(640, 480, gg3d.WithScale(300))
//	canvas, err := r.Render(model, gg3d.DefaultCamera(), mat)
//	if err != nil {
//		return err
//	}
//	img := canvas.ToImage()
//
// # Modes
//
// ModeFilled culls back faces, shades each face flat with
// max(cosθ^shininess, 0.05) and depth-tests every pixel. ModeWireframe draws
// every polygon edge with Bresenham lines, with no culling or depth test.
// WithStereo renders a red/cyan anaglyph from two eye positions.
//
// # Coordinate System
//
// World space is right-handed. A face is front-facing when its vertices run
// counter-clockwise as seen by the viewer, so its normal (p1-p0) × (p2-p0)
// points toward the eye. Faces are assumed planar and convex; they are
// fan-triangulated from vertex 0.
//
// Canvas coordinates have (0, 0) at the bottom-left pixel with y growing
// upward. ToImage and the image.Image methods flip rows so that image row 0
// is the top of the picture.
//
// # Errors
//
// Malformed configuration is reported with wrapped sentinel errors
// (ErrDimensionMismatch, ErrInvalidProjection, ErrInvalidSize,
// ErrDegenerateCamera, ErrEmptyMaterial). Degenerate geometry is never an
// error: such faces are skipped and counted in Stats.
package gg3d
