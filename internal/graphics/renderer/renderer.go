package renderer

import (
	"context"
	"fmt"
	"io/fs"

	"gldemos/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Options holds fixed GL state for one demo
type Options struct {
	DepthTest bool
}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	opts        Options
	ready       int
}

// NewRenderer creates a renderer drawing rs in order every frame
func NewRenderer(opts Options, rs ...Renderable) *Renderer {
	return &Renderer{renderables: rs, opts: opts}
}

// Init initializes all renderables in order. On failure the ones already
// initialized are disposed.
func (r *Renderer) Init(ctx context.Context, assets fs.FS) error {
	if r.opts.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	for i, rb := range r.renderables {
		if err := rb.Init(ctx, assets); err != nil {
			r.ready = i
			r.Dispose()
			return fmt.Errorf("renderable %d: %w", i, err)
		}
	}
	r.ready = len(r.renderables)
	return nil
}

// Render clears the frame and draws every renderable
func (r *Renderer) Render(rc RenderContext) {
	defer profiling.Track("renderer.Render")()

	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.opts.DepthTest {
		mask |= gl.DEPTH_BUFFER_BIT
		gl.Enable(gl.DEPTH_TEST)
	}
	gl.Clear(mask)

	for _, rb := range r.renderables[:r.ready] {
		rb.Render(rc)
	}
}

// Dispose cleans up all initialized renderables in reverse order
func (r *Renderer) Dispose() {
	for i := r.ready - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.ready = 0
}
