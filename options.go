package gg3d

// Mode selects how faces are drawn. It is fixed for the lifetime of a
// Renderer.
type Mode int

const (
	// ModeFilled draws flat-shaded, depth-tested triangles and culls back
	// faces.
	ModeFilled Mode = iota
	// ModeWireframe draws every polygon edge as a line with no culling,
	// shading or depth test.
	ModeWireframe
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFilled:
		return "filled"
	case ModeWireframe:
		return "wireframe"
	default:
		return "unknown"
	}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	// Filled rendering with the defaults
//	r := gg3d.NewRenderer(800, 600)
//
//	// Wireframe, four rasterization bands
//	r := gg3d.NewRenderer(800, 600, gg3d.WithMode(gg3d.ModeWireframe), gg3d.WithWorkers(4))
type Option func(*options)

// options holds the Renderer configuration.
type options struct {
	mode       Mode
	scale      float64
	near, far  float64
	background Color
	wire       Color
	workers    int
	stereo     bool
	separation float64
}

// Defaults used when no option overrides them.
const (
	DefaultScale = 500
	DefaultNear  = 0.1
	DefaultFar   = 1000
)

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		mode:       ModeFilled,
		scale:      DefaultScale,
		near:       DefaultNear,
		far:        DefaultFar,
		background: Black,
		wire:       White,
		workers:    1,
	}
}

// WithMode selects filled or wireframe rendering.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithScale sets how many pixels one world unit spans at unit distance from
// the eye.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithDepthRange sets the near and far planes, measured from the eye along
// the gaze. Geometry nearer than near is dropped per pixel.
func WithDepthRange(near, far float64) Option {
	return func(o *options) {
		o.near = near
		o.far = far
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithWireColor sets the line color used in wireframe mode.
func WithWireColor(c Color) Option {
	return func(o *options) {
		o.wire = c
	}
}

// WithWorkers splits the canvas into n horizontal bands rasterized
// concurrently. Values below 2 render serially. The output is identical
// either way.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithStereo renders a red/cyan anaglyph: the scene is drawn from two eyes
// separation world units apart, the left eye supplying red and the right
// eye green and blue.
func WithStereo(separation float64) Option {
	return func(o *options) {
		o.stereo = true
		o.separation = separation
	}
}
