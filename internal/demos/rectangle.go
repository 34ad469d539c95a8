package demos

import (
	"context"
	"io/fs"

	"gldemos/internal/config"
	"gldemos/internal/graphics/renderables/square"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/input"
	"gldemos/internal/scene"

	"go.uber.org/zap"
)

// Rectangle is the keyboard-driven square demo.
type Rectangle struct {
	base
	scene *scene.Rectangle
}

// NewRectangle creates the demo with the movement scheme from cfg.
func NewRectangle(cfg *config.Config, assets fs.FS, log *zap.Logger) (*Rectangle, error) {
	scheme, err := input.ParseScheme(cfg.Input.Scheme)
	if err != nil {
		return nil, err
	}
	return &Rectangle{
		base:  newBase(cfg, assets, log),
		scene: scene.NewRectangle(scheme, cfg.Input.MoveStep),
	}, nil
}

// Init loads the square program and uploads its corners.
func (r *Rectangle) Init(ctx context.Context, width, height int) error {
	sq := square.NewSquare(r.scene, r.cfg.Shaders.Vertex, r.cfg.Shaders.Fragment)
	return r.build(ctx, renderer.Options{}, width, height, sq)
}

// HandleKey moves the square.
func (r *Rectangle) HandleKey(ev input.KeyEvent) {
	r.scene.HandleKey(ev)
}

// Frame applies held-key movement and draws.
func (r *Rectangle) Frame(elapsed float64) {
	r.scene.Advance()
	r.renderer.Render(renderer.RenderContext{Elapsed: elapsed})
}
