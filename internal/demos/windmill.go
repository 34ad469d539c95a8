package demos

import (
	"context"
	"io/fs"

	"gldemos/internal/config"
	"gldemos/internal/graphics/renderables/windmill"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/input"

	"go.uber.org/zap"
)

// Windmill is the animated windmill demo. It ignores input.
type Windmill struct {
	base
}

// NewWindmill creates the demo.
func NewWindmill(cfg *config.Config, assets fs.FS, log *zap.Logger) *Windmill {
	return &Windmill{base: newBase(cfg, assets, log)}
}

// Init loads the program and uploads the three part rectangles.
func (w *Windmill) Init(ctx context.Context, width, height int) error {
	wm := windmill.NewWindmill(w.cfg.Shaders.Vertex, w.cfg.Shaders.Fragment)
	return w.build(ctx, renderer.Options{}, width, height, wm)
}

func (w *Windmill) HandleKey(input.KeyEvent) {}

// Frame draws the windmill posed at elapsed seconds.
func (w *Windmill) Frame(elapsed float64) {
	w.renderer.Render(renderer.RenderContext{Elapsed: elapsed})
}
